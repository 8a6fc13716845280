package stripe

// RequestParams is the common request surface embedded by every
// per-endpoint params struct. None of its fields are form-encoded.
type RequestParams struct {
	// IdempotencyKey deduplicates retries of side-effecting calls. When
	// empty, the client generates a fresh random key per logical call.
	IdempotencyKey string `form:"-"`

	// Headers are extra headers attached to this call only.
	Headers map[string]string `form:"-"`

	// StripeAccount overrides the client-default account header for this
	// call.
	StripeAccount string `form:"-"`
}

// ExpandParams names response fields to materialize as full objects
// instead of bare id references.
type ExpandParams struct {
	Expand []string `form:"expand"`
}

// ListParams is the common query surface of cursor-paginated list
// endpoints.
type ListParams struct {
	RequestParams
	ExpandParams

	Limit         int64  `form:"limit"`
	StartingAfter string `form:"starting_after"`
	EndingBefore  string `form:"ending_before"`
}

// SearchParams is the common query surface of search endpoints. Page is
// the opaque next_page token from a previous response.
type SearchParams struct {
	RequestParams
	ExpandParams

	Query string `form:"query"`
	Limit int64  `form:"limit"`
	Page  string `form:"page"`
}

// RangeQueryParams bounds a timestamp field, e.g. `created[gte]=...`.
type RangeQueryParams struct {
	GreaterThan        int64 `form:"gt"`
	GreaterThanOrEqual int64 `form:"gte"`
	LesserThan         int64 `form:"lt"`
	LesserThanOrEqual  int64 `form:"lte"`
}

// Pointer helpers for optional scalar parameters. A nil pointer is absent
// from the encoded output; String("") is the explicit unset sentinel and
// encodes as `key=`.

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Int64 returns a pointer to i.
func Int64(i int64) *int64 {
	return &i
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Float64 returns a pointer to f.
func Float64(f float64) *float64 {
	return &f
}
