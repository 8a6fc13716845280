package stripe_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   stripe.ErrorKind
	}{
		{http.StatusBadRequest, stripe.ErrorKindBadRequest},
		{http.StatusUnauthorized, stripe.ErrorKindUnauthorized},
		{http.StatusPaymentRequired, stripe.ErrorKindRequestFailed},
		{http.StatusNotFound, stripe.ErrorKindNotFound},
		{http.StatusConflict, stripe.ErrorKindConflict},
		{http.StatusTooManyRequests, stripe.ErrorKindRateLimited},
		{http.StatusInternalServerError, stripe.ErrorKindServiceError},
		{http.StatusBadGateway, stripe.ErrorKindServiceError},
		{http.StatusServiceUnavailable, stripe.ErrorKindServiceError},
		{http.StatusTeapot, stripe.ErrorKindUnknown},
		{http.StatusForbidden, stripe.ErrorKindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, stripe.KindForStatus(tt.status))
		})
	}
}

func TestNewAPIError(t *testing.T) {
	t.Run("parses error envelope", func(t *testing.T) {
		body := []byte(`{
			"error": {
				"type": "card_error",
				"code": "card_declined",
				"param": "source",
				"message": "Your card was declined.",
				"decline_code": "insufficient_funds",
				"doc_url": "https://docs.example.com/errors"
			}
		}`)

		apiErr := stripe.NewAPIError(http.StatusPaymentRequired, body, "req_123", nil, 4096)

		assert.Equal(t, stripe.ErrorKindRequestFailed, apiErr.Kind)
		assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
		assert.Equal(t, "req_123", apiErr.RequestID)
		assert.Equal(t, "card_error", apiErr.Type)
		assert.Equal(t, "card_declined", apiErr.Code)
		assert.Equal(t, "source", apiErr.Param)
		assert.Equal(t, "Your card was declined.", apiErr.Message)
		assert.Equal(t, "insufficient_funds", apiErr.DeclineCode)
		assert.Equal(t, "https://docs.example.com/errors", apiErr.DocURL)
		assert.Nil(t, apiErr.RawBody)
	})

	t.Run("preserves raw body when envelope does not parse", func(t *testing.T) {
		body := []byte(`<html>Bad Gateway</html>`)

		apiErr := stripe.NewAPIError(http.StatusBadGateway, body, "req_456", nil, 4096)

		assert.Equal(t, stripe.ErrorKindServiceError, apiErr.Kind)
		assert.Empty(t, apiErr.Message)
		assert.Equal(t, body, apiErr.RawBody)
	})

	t.Run("truncates oversized raw body", func(t *testing.T) {
		body := make([]byte, 10000)
		for i := range body {
			body[i] = 'x'
		}

		apiErr := stripe.NewAPIError(http.StatusInternalServerError, body, "", nil, 4096)

		assert.Len(t, apiErr.RawBody, 4096)
	})

	t.Run("parses retry-after header", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Retry-After", "30")

		apiErr := stripe.NewAPIError(http.StatusTooManyRequests, []byte(`{}`), "req_789", headers, 4096)

		assert.Equal(t, stripe.ErrorKindRateLimited, apiErr.Kind)
		assert.Equal(t, 30*time.Second, apiErr.RetryAfter)
	})

	t.Run("ignores unparseable retry-after", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Retry-After", "soon")

		apiErr := stripe.NewAPIError(http.StatusTooManyRequests, []byte(`{}`), "", headers, 4096)

		assert.Zero(t, apiErr.RetryAfter)
	})
}

func TestErrorString(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		apiErr := &stripe.Error{
			Kind:       stripe.ErrorKindNotFound,
			StatusCode: 404,
			RequestID:  "req_abc",
			Message:    "No such charge: ch_missing",
		}

		assert.Equal(t, "not_found: No such charge: ch_missing (status 404, request-id req_abc)", apiErr.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := fmt.Errorf("dial tcp: connection refused")
		apiErr := (&stripe.Error{Kind: stripe.ErrorKindTransport}).WithCause(cause)

		assert.Equal(t, "transport: dial tcp: connection refused", apiErr.Error())
		assert.ErrorIs(t, apiErr, cause)
	})

	t.Run("status only", func(t *testing.T) {
		apiErr := &stripe.Error{
			Kind:       stripe.ErrorKindServiceError,
			StatusCode: 502,
			RequestID:  "req_def",
		}

		assert.Equal(t, "service_error: status 502 (request-id req_def)", apiErr.Error())
	})
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		kind      stripe.ErrorKind
		predicate func(error) bool
	}{
		{"IsNotFound", stripe.ErrorKindNotFound, stripe.IsNotFound},
		{"IsRateLimited", stripe.ErrorKindRateLimited, stripe.IsRateLimited},
		{"IsRequestFailed", stripe.ErrorKindRequestFailed, stripe.IsRequestFailed},
		{"IsUnauthorized", stripe.ErrorKindUnauthorized, stripe.IsUnauthorized},
		{"IsDecode", stripe.ErrorKindDecode, stripe.IsDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &stripe.Error{Kind: tt.kind}

			assert.True(t, tt.predicate(apiErr))
			assert.True(t, tt.predicate(fmt.Errorf("getting charge: %w", apiErr)), "predicate must see through wrapping")
			assert.False(t, tt.predicate(&stripe.Error{Kind: stripe.ErrorKindUnknown}))
			assert.False(t, tt.predicate(fmt.Errorf("plain error")))
			assert.False(t, tt.predicate(nil))
		})
	}
}

func TestErrorUnwrapChain(t *testing.T) {
	root := fmt.Errorf("read: connection reset")
	apiErr := (&stripe.Error{Kind: stripe.ErrorKindTransport}).WithCause(root)
	wrapped := fmt.Errorf("listing charges: %w", apiErr)

	var target *stripe.Error

	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, stripe.ErrorKindTransport, target.Kind)
	assert.ErrorIs(t, wrapped, root)
}
