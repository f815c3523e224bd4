// Package config holds the connection settings shared by the vectorgate
// clients: host, ports, transport security, and the API-key credential.
//
// Settings are resolved in a deterministic precedence order, lowest to
// highest:
//
//  1. built-in defaults (localhost, gRPC 6334, REST 6333, no TLS, no key)
//  2. a local JSON file carrying at minimum an "api_key" field
//  3. VECTORGATE_* environment variables
//  4. explicit values set through the With* builders
//
// Load applies layers 1-3; builders applied afterwards form layer 4:
//
//	settings, err := config.Load("config.json")
//	if err != nil {
//	    return err
//	}
//	settings.WithAPIKey(keyFromFlag) // explicit argument wins
//
// Secrets are never embedded in source. The key reaches the process as an
// explicit argument, the VECTORGATE_API_KEY variable, or the config file;
// how production keys are distributed to those places (secret manager,
// mounted file, CI variable) is owned by the deployment, not this library.
package config
