// Package form serializes typed request parameters into the payment
// service's bracketed form/query representation.
//
// Parameter structs declare wire names with `form:"..."` tags. Fields are
// emitted in declaration order. Pointer fields are optional: a nil pointer
// is absent from the output entirely, while a pointer to an empty string
// encodes as `key=`, the service's sentinel for unsetting a field.
// Non-pointer empty strings and zero integers, nil or empty slices, and nil
// or empty maps are omitted; use a pointer to send an explicit zero.
// Nested structs nest with square brackets (`owner[address][city]`),
// slices of structs with indexed brackets (`items[0][amount]`), and slices
// of scalars as repeated `key[]` pairs. Map keys are emitted in sorted order.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedType = errors.New("unsupported parameter type")
)

// Encode serializes params into ordered key/value pairs. Params must be a
// struct or a pointer to one; a nil pointer yields empty Values.
func Encode(params interface{}) (*Values, error) {
	values := NewValues()

	if params == nil {
		return values, nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return values, nil
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Kind())
	}

	err := encodeStruct(values, v, "")
	if err != nil {
		return nil, err
	}

	return values, nil
}

func encodeStruct(values *Values, v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("form")
		if tag == "-" {
			continue
		}

		fv := v.Field(i)

		// Untagged embedded structs are flattened into the parent.
		if tag == "" {
			if field.Anonymous {
				inner := fv
				for inner.Kind() == reflect.Ptr {
					if inner.IsNil() {
						inner = reflect.Value{}

						break
					}

					inner = inner.Elem()
				}

				if inner.IsValid() && inner.Kind() == reflect.Struct {
					err := encodeStruct(values, inner, prefix)
					if err != nil {
						return err
					}
				}
			}

			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "[" + tag + "]"
		}

		err := encodeField(values, fv, key, false)
		if err != nil {
			return err
		}
	}

	return nil
}

// encodeField writes one parameter node. explicit marks values reached
// through a non-nil pointer, for which the empty string must be emitted
// rather than treated as absent.
func encodeField(values *Values, v reflect.Value, key string, explicit bool) error {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return encodeField(values, v.Elem(), key, true)

	case reflect.String:
		s := v.String()
		if s == "" && !explicit {
			return nil
		}

		values.Add(key, s)

		return nil

	case reflect.Bool:
		values.Add(key, strconv.FormatBool(v.Bool()))

		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() == 0 && !explicit {
			return nil
		}

		values.Add(key, strconv.FormatInt(v.Int(), 10))

		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() == 0 && !explicit {
			return nil
		}

		values.Add(key, strconv.FormatUint(v.Uint(), 10))

		return nil

	case reflect.Float32, reflect.Float64:
		bitSize := 64
		if v.Kind() == reflect.Float32 {
			bitSize = 32
		}

		values.Add(key, strconv.FormatFloat(v.Float(), 'f', -1, bitSize))

		return nil

	case reflect.Slice, reflect.Array:
		return encodeSequence(values, v, key)

	case reflect.Map:
		return encodeMap(values, v, key)

	case reflect.Struct:
		return encodeStruct(values, v, key)

	default:
		return fmt.Errorf("%w: %s for key %q", ErrUnsupportedType, v.Kind(), key)
	}
}

func encodeSequence(values *Values, v reflect.Value, key string) error {
	if v.Len() == 0 {
		// There is no canonical encoding for an empty sequence.
		return nil
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)

		if isScalar(elem) {
			err := encodeField(values, elem, key+"[]", true)
			if err != nil {
				return err
			}

			continue
		}

		err := encodeField(values, elem, key+"["+strconv.Itoa(i)+"]", true)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeMap(values *Values, v reflect.Value, key string) error {
	if v.Len() == 0 {
		return nil
	}

	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map key %s for key %q", ErrUnsupportedType, v.Type().Key().Kind(), key)
	}

	keys := make([]string, 0, v.Len())
	for _, mk := range v.MapKeys() {
		keys = append(keys, mk.String())
	}

	// Map iteration order is not deterministic in Go; sort for stable output.
	sort.Strings(keys)

	for _, mk := range keys {
		// Map keys are caller data; escape them so a bracket or ampersand
		// in a metadata key cannot corrupt the wire format.
		err := encodeField(values, v.MapIndex(reflect.ValueOf(mk).Convert(v.Type().Key())), key+"["+url.QueryEscape(mk)+"]", true)
		if err != nil {
			return err
		}
	}

	return nil
}

func isScalar(v reflect.Value) bool {
	k := v.Kind()

	for k == reflect.Ptr || k == reflect.Interface {
		if v.IsNil() {
			return true
		}

		v = v.Elem()
		k = v.Kind()
	}

	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
