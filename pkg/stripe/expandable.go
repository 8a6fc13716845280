package stripe

import (
	"encoding/json"
	"fmt"
)

// objectNamer is implemented by resources with a fixed `object`
// discriminator. Open polymorphic sums do not implement it.
type objectNamer interface {
	objectName() string
}

// Expandable is a reference field that arrives either as a bare id string
// or, when the caller named it in the request's expand list, as the full
// nested object. An object whose `object` discriminator names a different
// resource kind is a decode error, never misattributed data. Both accepted
// forms decode into the same representation: ID is always populated, Value
// only for the expanded form.
type Expandable[T any] struct {
	ID    string
	Value *T
}

// Expanded reports whether the full object was materialized.
func (e *Expandable[T]) Expanded() bool {
	return e != nil && e.Value != nil
}

// UnmarshalJSON implements json.Unmarshaler per the two accepted forms.
// Any other JSON shape is a decode error.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &DecodeError{Reason: DecodeShape, Path: "$"}
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &e.ID)
	case '{':
		value := new(T)

		if named, ok := any(value).(objectNamer); ok {
			var head struct {
				Object string `json:"object"`
			}

			err := json.Unmarshal(data, &head)
			if err != nil {
				return err
			}

			if head.Object != "" && head.Object != named.objectName() {
				return &DecodeError{
					Reason: DecodeShape,
					Path:   "object",
					cause:  fmt.Errorf("expandable reference is a %q, want %q", head.Object, named.objectName()),
				}
			}
		}

		err := json.Unmarshal(data, value)
		if err != nil {
			return err
		}

		e.Value = value
		if ident, ok := any(value).(Identifiable); ok {
			e.ID = ident.ObjectID()
		}

		return nil
	default:
		if string(data) == "null" {
			return nil
		}

		return &DecodeError{Reason: DecodeShape, Path: "$", cause: fmt.Errorf("expandable reference is neither id nor object: %s", firstBytes(data))}
	}
}

// MarshalJSON implements json.Marshaler, always collapsing to the id form.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.ID == "" {
		return []byte("null"), nil
	}

	return json.Marshal(e.ID)
}

func firstBytes(data []byte) string {
	const n = 24
	if len(data) > n {
		return string(data[:n]) + "..."
	}

	return string(data)
}
