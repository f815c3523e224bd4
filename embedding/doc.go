// Package embedding turns text into vectors via an external,
// OpenAI-compatible inference service.
//
// The package treats the model as a black box: callers hand in strings
// and get back float32 vectors sized for the target collection. Provider
// details (endpoints, HTTP, auth) stay behind the Client so application
// code composes embedding with the vector store without knowing which
// service computed the vectors.
package embedding
