// Package apikeys manages API keys on a Qdrant instance through its
// management REST endpoint.
//
// Key administration runs over HTTP on the REST port, separate from the
// gRPC data plane, because the management endpoint is only exposed
// there. The admin client authenticates with a master key and can mint
// scoped keys (read or write, optionally restricted to named
// collections), list the keys that exist, and revoke keys by id.
//
// The package deliberately never logs or returns the master key; created
// key secrets appear exactly once, in the create response, matching the
// service's own behavior.
package apikeys
