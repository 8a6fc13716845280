package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies every error surfaced by the client into a single
// closed taxonomy.
type ErrorKind string

const (
	// ErrorKindTransport is a connection-level failure after all retries.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindBadRequest is HTTP 400 with a parseable error body.
	ErrorKindBadRequest ErrorKind = "bad_request"
	// ErrorKindUnauthorized is HTTP 401.
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	// ErrorKindRequestFailed is HTTP 402, e.g. a declined card.
	ErrorKindRequestFailed ErrorKind = "request_failed"
	// ErrorKindNotFound is HTTP 404.
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindConflict is HTTP 409 after retries are exhausted.
	ErrorKindConflict ErrorKind = "conflict"
	// ErrorKindRateLimited is HTTP 429.
	ErrorKindRateLimited ErrorKind = "rate_limited"
	// ErrorKindServiceError is HTTP >= 500 after retries are exhausted.
	ErrorKindServiceError ErrorKind = "service_error"
	// ErrorKindDecode is a response body that could not be parsed.
	ErrorKindDecode ErrorKind = "decode"
	// ErrorKindUnknown is any status code not otherwise classified.
	ErrorKindUnknown ErrorKind = "unknown"
)

// Error is the typed error returned by every client operation.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	// RequestID is the Request-Id header for caller-side correlation.
	RequestID string

	// Fields parsed from the service's error envelope, when present.
	Type        string
	Code        string
	Param       string
	Message     string
	DeclineCode string
	DocURL      string

	// RetryAfter is the server-suggested delay on rate limiting.
	RetryAfter time.Duration

	// RawBody preserves the (truncated) response body when the error
	// envelope did not parse, for diagnostics.
	RawBody []byte

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: %s (status %d, request-id %s)", e.Kind, e.Message, e.StatusCode, e.RequestID)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d (request-id %s)", e.Kind, e.StatusCode, e.RequestID)
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error and returns e.
func (e *Error) WithCause(err error) *Error {
	e.cause = err

	return e
}

// KindForStatus maps an HTTP status code to its error kind.
func KindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusBadRequest:
		return ErrorKindBadRequest
	case status == http.StatusUnauthorized:
		return ErrorKindUnauthorized
	case status == http.StatusPaymentRequired:
		return ErrorKindRequestFailed
	case status == http.StatusNotFound:
		return ErrorKindNotFound
	case status == http.StatusConflict:
		return ErrorKindConflict
	case status == http.StatusTooManyRequests:
		return ErrorKindRateLimited
	case status >= 500:
		return ErrorKindServiceError
	default:
		return ErrorKindUnknown
	}
}

// errorEnvelope is the wire shape of a service error body.
type errorEnvelope struct {
	Error struct {
		Type        string `json:"type"`
		Code        string `json:"code"`
		Param       string `json:"param"`
		Message     string `json:"message"`
		DeclineCode string `json:"decline_code"`
		DocURL      string `json:"doc_url"`
	} `json:"error"`
}

// NewAPIError builds the typed error for a non-2xx response. The body is
// parsed as the standard error envelope when possible; otherwise it is
// preserved raw and truncated for diagnostics. headers may be nil.
func NewAPIError(status int, body []byte, requestID string, headers http.Header, maxRawBody int) *Error {
	apiErr := &Error{
		Kind:       KindForStatus(status),
		StatusCode: status,
		RequestID:  requestID,
	}

	var envelope errorEnvelope

	err := json.Unmarshal(body, &envelope)
	if err == nil && (envelope.Error.Type != "" || envelope.Error.Message != "" || envelope.Error.Code != "") {
		apiErr.Type = envelope.Error.Type
		apiErr.Code = envelope.Error.Code
		apiErr.Param = envelope.Error.Param
		apiErr.Message = envelope.Error.Message
		apiErr.DeclineCode = envelope.Error.DeclineCode
		apiErr.DocURL = envelope.Error.DocURL
	} else {
		apiErr.RawBody = truncateBody(body, maxRawBody)
	}

	if headers != nil {
		if retryAfter := headers.Get("Retry-After"); retryAfter != "" {
			seconds, parseErr := strconv.Atoi(retryAfter)
			if parseErr == nil && seconds >= 0 {
				apiErr.RetryAfter = time.Duration(seconds) * time.Second
			}
		}
	}

	return apiErr
}

func truncateBody(body []byte, limit int) []byte {
	if limit > 0 && len(body) > limit {
		return body[:limit]
	}

	return body
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	return isKind(err, ErrorKindNotFound)
}

// IsRateLimited reports whether err is a 429 from the service.
func IsRateLimited(err error) bool {
	return isKind(err, ErrorKindRateLimited)
}

// IsRequestFailed reports whether err is a 402, e.g. a card decline.
func IsRequestFailed(err error) bool {
	return isKind(err, ErrorKindRequestFailed)
}

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool {
	return isKind(err, ErrorKindUnauthorized)
}

// IsDecode reports whether err is a response decode failure.
func IsDecode(err error) bool {
	return isKind(err, ErrorKindDecode)
}

func isKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// Common static errors that can be wrapped with context.
var (
	ErrAPIKeyRequired     = errors.New("API key is required")
	ErrConfigRequired     = errors.New("config is required")
	ErrNoMoreItems        = errors.New("no more items")
	ErrUnresolvedPath     = errors.New("path contains unsubstituted placeholders")
	ErrIdempotencyKeyLong = errors.New("idempotency key exceeds maximum length")
)
