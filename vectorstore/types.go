package vectorstore

// Distance enumerates the similarity metrics a collection can be created
// with. The value is fixed at collection creation and applies to every
// vector stored in it.
type Distance string

const (
	// DistanceCosine ranks by cosine similarity (higher = more similar).
	DistanceCosine Distance = "Cosine"

	// DistanceDot ranks by dot product.
	DistanceDot Distance = "Dot"

	// DistanceEuclid ranks by Euclidean distance.
	DistanceEuclid Distance = "Euclid"
)

// Point is a stored vector with its identifier and optional payload.
//
// IDs are strings at this layer; adapters accept both unsigned-integer and
// UUID forms and map them to whatever the backing service requires.
// The vector length must equal the dimension of the collection the point is
// written to; the service enforces this and the adapter surfaces a
// *ValidationError on mismatch.
type Point struct {
	// ID is the unique identifier of the point within its collection.
	ID string `json:"id"`

	// Vector is the dense embedding representation.
	Vector []float32 `json:"vector"`

	// Payload is optional metadata stored with the vector, queryable via
	// filters.
	Payload map[string]any `json:"payload,omitempty"`
}

// VectorPatch assigns a new vector to an existing point, leaving its
// payload untouched.
type VectorPatch struct {
	ID     string    `json:"id"`
	Vector []float32 `json:"vector"`
}

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in.
	CollectionName string `json:"collectionName"`

	// Vector is the query embedding to find similar vectors for.
	Vector []float32 `json:"vector"`

	// Limit bounds the number of results returned.
	Limit int `json:"limit"`

	// Offset skips the given number of leading results, for pagination.
	Offset int `json:"offset,omitempty"`

	// Filter optionally restricts candidates by payload fields.
	Filter *Filter `json:"filter,omitempty"`
}

// SearchResult is a single ranked hit. Results are always returned in
// non-increasing score order.
type SearchResult struct {
	// ID is the identifier of the matched point.
	ID string `json:"id"`

	// Score is the similarity score under the collection's metric.
	Score float32 `json:"score"`

	// Payload contains the metadata stored with the vector.
	Payload map[string]any `json:"payload,omitempty"`
}

// ScrollPage is one bounded batch of a paginated iteration over a
// collection's points.
//
// Cursor is an opaque continuation token: pass it to the next Scroll call
// to resume. An empty Cursor together with an empty Points slice marks the
// end of the data set.
type ScrollPage struct {
	Points []Point `json:"points"`
	Cursor string  `json:"cursor,omitempty"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection.
	Name string `json:"name"`

	// Status indicates the operational state reported by the service
	// (e.g. "Green", "Yellow").
	Status string `json:"status,omitempty"`

	// Dimension is the fixed vector length for this collection.
	Dimension uint64 `json:"dimension"`

	// Distance is the similarity metric the collection was created with.
	Distance Distance `json:"distance"`

	// PointCount is the number of stored points.
	PointCount uint64 `json:"pointCount"`
}
