package apikeys

// Actions a key may be granted.
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// Key describes an API key as reported by the management endpoint. The
// Key field carries the secret itself and is only populated in create
// responses; listings return metadata without the secret.
type Key struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Key         string   `json:"key,omitempty"`
	Actions     []string `json:"actions,omitempty"`
	Collections []string `json:"collections,omitempty"`
}

// CreateRequest describes the key to mint. A zero Actions slice grants
// full access; a zero Collections slice scopes the key to all
// collections. An empty Name gets a generated one.
type CreateRequest struct {
	Name        string   `json:"name"`
	Actions     []string `json:"actions,omitempty"`
	Collections []string `json:"collections,omitempty"`
}
