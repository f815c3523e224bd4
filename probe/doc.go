// Package probe determines what a credential is actually allowed to do
// by attempting a fixed battery of operations against the vector store
// and classifying each outcome.
//
// The battery covers the permission surface that scoped API keys
// distinguish: listing collections, creating a collection, upserting a
// point, searching, and deleting a point. Operations run sequentially
// and every operation is attempted regardless of earlier failures, so a
// read-only key yields a full report rather than stopping at its first
// rejected write.
//
// Probing is active: it issues real requests against a scratch
// collection. Point it at an instance where creating and dropping that
// collection is acceptable.
package probe
