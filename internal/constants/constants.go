package constants

import "time"

// Retry policy defaults.
const (
	// DefaultMaxNetworkRetries is the default number of retries after the
	// initial attempt.
	DefaultMaxNetworkRetries = 2

	// DefaultRetryWaitBase is the base delay for exponential backoff.
	DefaultRetryWaitBase = 500 * time.Millisecond

	// DefaultRetryWaitMax caps the computed backoff delay.
	DefaultRetryWaitMax = 2 * time.Second

	// RetryAfterClampFactor bounds a server-supplied Retry-After delay to
	// RetryAfterClampFactor times the backoff cap.
	RetryAfterClampFactor = 4
)

// Timeouts.
const (
	// DefaultTimeoutBudget is the ceiling on one logical call including all
	// retries and backoff sleeps.
	DefaultTimeoutBudget = 80 * time.Second
)

// Idempotency.
const (
	// IdempotencyKeyEntropy is the number of random bytes in a generated
	// idempotency key.
	IdempotencyKeyEntropy = 16

	// MaxIdempotencyKeyLength is the service-side limit on key length.
	MaxIdempotencyKeyLength = 255
)

// Diagnostics.
const (
	// MaxRawBodyBytes limits the raw response body preserved on errors.
	MaxRawBodyBytes = 4 * 1024

	// MaskedSecret is used to hide sensitive header values in debug logs.
	MaskedSecret = "***"
)

// Batch execution.
const (
	// DefaultBatchConcurrency limits concurrent batch operations.
	DefaultBatchConcurrency = 5

	// DefaultBatchTimeout is the per-operation timeout inside a batch.
	DefaultBatchTimeout = 30 * time.Second
)

// Pagination.
const (
	// StandardPageSize is the common page size for list requests.
	StandardPageSize = 50
)
