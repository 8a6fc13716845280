package stripe

import "encoding/json"

// Nullable carries the three states an optional response field can be in:
// absent, present-null, and present-with-value. The service uses null to
// mean "explicitly cleared", which is distinct from the field not having
// been sent at all.
type Nullable[T any] struct {
	// Value is the decoded value when Valid is true.
	Value T
	// Valid reports that the field was present and non-null.
	Valid bool
	// Set reports that the field key appeared in the JSON at all.
	Set bool
}

// NullableOf builds a present-with-value Nullable.
func NullableOf[T any](value T) Nullable[T] {
	return Nullable[T]{Value: value, Valid: true, Set: true}
}

// Null reports that the field was present and explicitly null.
func (n Nullable[T]) Null() bool {
	return n.Set && !n.Valid
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// key is present, which is what distinguishes Set from absent.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		n.Valid = false

		return nil
	}

	err := json.Unmarshal(data, &n.Value)
	if err != nil {
		return err
	}

	n.Valid = true

	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Value)
}
