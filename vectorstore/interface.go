package vectorstore

import "context"

// Service is the common interface for vector-database adapters.
// It provides a database-agnostic abstraction so application code can
// switch backends without change; the qdrant package ships the production
// implementation.
//
// Every call is a single synchronous request/response against the remote
// service. No method retries, batches beyond the underlying transport, or
// keeps state other than the open connection handle.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_service.go -package=mocks
type Service interface {
	// EnsureCollection recreates name from scratch with the given
	// dimension and metric: if the collection already exists it is
	// deleted first. Destructive: previously stored points are lost.
	EnsureCollection(ctx context.Context, name string, dim uint64, metric Distance) error

	// CreateCollectionIfMissing creates name only when absent; it never
	// drops existing data. Safe to call repeatedly.
	CreateCollectionIfMissing(ctx context.Context, name string, dim uint64, metric Distance) error

	// EnsureAbsent deletes name, treating "not found" as success.
	EnsureAbsent(ctx context.Context, name string) error

	// CollectionExists reports whether name exists.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// ListCollections returns the names of all collections visible to
	// the bound credential.
	ListCollections(ctx context.Context) ([]string, error)

	// Upsert inserts or replaces points by identifier.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns ranked results in non-increasing score order.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)

	// Retrieve returns the points matching the given identifiers,
	// omitting any not found. Missing ids are not an error.
	Retrieve(ctx context.Context, collection string, ids []string) ([]Point, error)

	// Scroll returns one bounded batch plus an opaque cursor. An empty
	// cursor starts from the beginning; the returned cursor continues;
	// end of data yields an empty batch and an empty cursor.
	Scroll(ctx context.Context, collection string, cursor string, limit int) (*ScrollPage, error)

	// Delete removes points by explicit identifier list.
	Delete(ctx context.Context, collection string, ids []string) error

	// DeleteByFilter removes every point matching the filter predicate.
	DeleteByFilter(ctx context.Context, collection string, filter *Filter) error

	// UpdateVectors replaces the vectors of existing points, leaving
	// payloads untouched.
	UpdateVectors(ctx context.Context, collection string, patches []VectorPatch) error

	// SetPayload merges the patch into the payload of the given points:
	// only the specified keys are written, other keys survive.
	SetPayload(ctx context.Context, collection string, patch map[string]any, ids []string) error
}
