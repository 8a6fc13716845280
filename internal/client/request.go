package client

import (
	"github.com/ledgeline-io/stripe-client/internal/constants"
	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// newRequest builds a transport request and carries over the per-call
// surface that is excluded from form encoding.
func newRequest(method, path string, params *stripe.RequestParams) *httpc.Request {
	req := &httpc.Request{
		Method: method,
		Path:   path,
	}

	if params != nil {
		req.IdempotencyKey = params.IdempotencyKey
		req.Headers = params.Headers
		req.StripeAccount = params.StripeAccount
	}

	return req
}

// decodeResponse unmarshals a successful response body into out. Failures
// surface as a typed decode error carrying the request id and a truncated
// copy of the offending body.
func decodeResponse[T any](c *httpc.Client, resp *httpc.Response, out *T) error {
	err := stripe.Unmarshal(resp.Body, out, c.Hooks())
	if err != nil {
		body := resp.Body
		if len(body) > constants.MaxRawBodyBytes {
			body = body[:constants.MaxRawBodyBytes]
		}

		apiErr := &stripe.Error{
			Kind:       stripe.ErrorKindDecode,
			StatusCode: resp.StatusCode,
			RequestID:  resp.RequestID,
			Message:    "response body does not match the expected shape",
			RawBody:    body,
		}

		return apiErr.WithCause(err)
	}

	return nil
}
