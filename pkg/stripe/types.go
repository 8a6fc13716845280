package stripe

// Resource is the base structure shared by every API resource. Each resource
// carries a string id and an `object` discriminator naming its kind.
type Resource struct {
	ID     string `json:"id"`
	Object string `json:"object"`
}

// ObjectID returns the resource id. It is also the list-pagination cursor:
// passing the id of the last seen element as `starting_after` fetches the
// next page.
func (r Resource) ObjectID() string {
	return r.ID
}

// Identifiable is implemented by every resource via the embedded Resource.
type Identifiable interface {
	ObjectID() string
}

// Metadata is the free-form key/value set attachable to most resources.
type Metadata map[string]string

// Deleted is the confirmation object returned by DELETE endpoints.
type Deleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// ObjectID implements Identifiable.
func (d Deleted) ObjectID() string {
	return d.ID
}

// ListEnvelope is the cursor-paginated wrapper used by list endpoints.
type ListEnvelope[T any] struct {
	Object     string `json:"object"`
	Data       []T    `json:"data"`
	HasMore    bool   `json:"has_more"`
	URL        string `json:"url"`
	TotalCount *int64 `json:"total_count,omitempty"`
}

func (l *ListEnvelope[T]) validate() error {
	if l.Data == nil {
		return &DecodeError{Reason: DecodeMissing, Field: "data"}
	}

	return nil
}

// SearchEnvelope is the token-paginated wrapper used by search endpoints.
// NextPage is the opaque cursor for the following page; it is absent or
// empty on the final page.
type SearchEnvelope[T any] struct {
	Object     string           `json:"object"`
	Data       []T              `json:"data"`
	HasMore    bool             `json:"has_more"`
	URL        string           `json:"url"`
	NextPage   Nullable[string] `json:"next_page"`
	TotalCount *int64           `json:"total_count,omitempty"`
}

func (s *SearchEnvelope[T]) validate() error {
	if s.Data == nil {
		return &DecodeError{Reason: DecodeMissing, Field: "data"}
	}

	return nil
}
