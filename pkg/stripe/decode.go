package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// DecodeReason identifies which decoder contract a response body violated.
type DecodeReason string

const (
	// DecodeMalformed is JSON that does not parse at all.
	DecodeMalformed DecodeReason = "malformed"
	// DecodeShape is a structurally wrong type at a required location.
	DecodeShape DecodeReason = "shape"
	// DecodeMissing is a required field that was absent.
	DecodeMissing DecodeReason = "missing"
)

// DecodeError describes a response body the decoder could not accept.
type DecodeError struct {
	Reason DecodeReason
	// Path is a JSON-path-style location for shape violations.
	Path string
	// Field names the absent field for missing violations.
	Field string

	cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Reason {
	case DecodeShape:
		return fmt.Sprintf("decode: wrong type at %s", e.Path)
	case DecodeMissing:
		return fmt.Sprintf("decode: missing required field %q", e.Field)
	default:
		if e.cause != nil {
			return fmt.Sprintf("decode: malformed JSON: %v", e.cause)
		}

		return "decode: malformed JSON"
	}
}

// Unwrap exposes the underlying json error, if any.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// OpenEnum is implemented by every response-side enumeration. Known reports
// whether the decoded value is one of the variants this client was built
// with; unknown values decode successfully and are preserved verbatim so
// that service-side additions never break decoding.
type OpenEnum interface {
	Known() bool
}

// validator is implemented by envelope types to enforce required keys.
type validator interface {
	validate() error
}

// Unmarshal decodes a response body into out. Unknown object keys are
// silently dropped for forward compatibility. Open-enum fields holding
// unrecognized values are reported through hooks.OnUnknownEnum, one call
// per value, and never fail the decode. Structural violations are reported
// as *DecodeError.
func Unmarshal(data []byte, out interface{}, hooks *Hooks) error {
	err := json.Unmarshal(data, out)
	if err != nil {
		return mapJSONError(err)
	}

	if v, ok := out.(validator); ok {
		err := v.validate()
		if err != nil {
			return err
		}
	}

	if ident, ok := out.(Identifiable); ok {
		if ident.ObjectID() == "" {
			return &DecodeError{Reason: DecodeMissing, Field: "id"}
		}
	}

	scanUnknownEnums(reflect.ValueOf(out), hooks)

	return nil
}

func mapJSONError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Reason: DecodeMalformed, cause: err}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = "$"
		}

		return &DecodeError{Reason: DecodeShape, Path: path, cause: err}
	}

	// Errors raised inside custom unmarshalers pass through unchanged when
	// already typed, and count as malformed otherwise.
	decodeErr := &DecodeError{}
	if errors.As(err, &decodeErr) {
		return decodeErr
	}

	return &DecodeError{Reason: DecodeMalformed, cause: err}
}

var openEnumType = reflect.TypeOf((*OpenEnum)(nil)).Elem()

// scanUnknownEnums walks the decoded value and fires OnUnknownEnum for each
// open-enum field holding a value this client does not recognize.
func scanUnknownEnums(v reflect.Value, hooks *Hooks) {
	if !v.IsValid() {
		return
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return
		}

		scanUnknownEnums(v.Elem(), hooks)

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}

			scanUnknownEnums(v.Field(i), hooks)
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			scanUnknownEnums(v.Index(i), hooks)
		}

	case reflect.Map:
		for _, key := range v.MapKeys() {
			scanUnknownEnums(v.MapIndex(key), hooks)
		}

	case reflect.String:
		if v.Type().Implements(openEnumType) {
			enum, ok := v.Interface().(OpenEnum)
			if ok && v.String() != "" && !enum.Known() {
				hooks.FireUnknownEnum(v.Type().String(), v.String())
			}
		}
	}
}
