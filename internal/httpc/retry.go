package httpc

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ledgeline-io/stripe-client/internal/constants"
)

// callState tracks one logical call across its transport attempts so the
// retryablehttp callbacks can drive the observability hooks.
type callState struct {
	method  string
	path    string
	attempt int
	reason  string
	start   time.Time
}

// newRetryClient configures a retry engine for a single logical call. The
// pooled http.Client underneath is shared; the engine itself captures the
// per-call state.
func (c *Client) newRetryClient(state *callState) *retryablehttp.Client {
	engine := &retryablehttp.Client{
		HTTPClient:   c.httpClient,
		RetryMax:     c.maxRetries,
		RetryWaitMin: c.waitBase,
		RetryWaitMax: c.waitMax,
		CheckRetry: func(ctx context.Context, resp *http.Response, err error) (bool, error) {
			return c.checkRetry(ctx, state, resp, err)
		},
		Backoff: func(minWait, maxWait time.Duration, attemptNum int, resp *http.Response) time.Duration {
			return c.backoff(state, minWait, maxWait, attemptNum, resp)
		},
		RequestLogHook: func(_ retryablehttp.Logger, req *http.Request, retryNumber int) {
			c.onAttempt(state, req, retryNumber)
		},
		ResponseLogHook: func(_ retryablehttp.Logger, resp *http.Response) {
			c.onResponse(state, resp)
		},
		// Surface the final response verbatim instead of a synthesized
		// "giving up" error, so the error mapper sees the real status
		// and body.
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	if c.debug && c.logger != nil {
		engine.Logger = &leveledLogger{logger: c.logger}
	}

	return engine
}

// checkRetry implements the retry eligibility rules: connection-level
// failures, 409, 429, and 5xx other than 501 are retryable; the
// Stripe-Should-Retry header is authoritative for failure statuses. A
// successful response is never retried.
func (c *Client) checkRetry(ctx context.Context, state *callState, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		if ctxErr(err) != nil {
			return false, err
		}

		state.reason = "connection error"

		return true, nil
	}

	if resp == nil {
		state.reason = "no response"

		return true, nil
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}

	switch resp.Header.Get("Stripe-Should-Retry") {
	case "true":
		state.reason = "server requested retry"

		return true, nil
	case "false":
		return false, nil
	}

	switch {
	case resp.StatusCode == http.StatusConflict:
		state.reason = "conflict"

		return true, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		state.reason = "rate limited"

		return true, nil
	case resp.StatusCode >= 500 && resp.StatusCode != http.StatusNotImplemented:
		state.reason = fmt.Sprintf("server error %d", resp.StatusCode)

		return true, nil
	}

	return false, nil
}

// backoff computes the sleep before the next attempt: exponential with
// ±50% jitter capped at waitMax, overridden by a server Retry-After header
// clamped to four times the cap.
func (c *Client) backoff(state *callState, waitBase, waitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	delay := jitteredBackoff(waitBase, waitMax, attemptNum)

	if retryAfter, ok := parseRetryAfter(resp); ok {
		clamp := waitMax * constants.RetryAfterClampFactor
		if retryAfter > clamp {
			retryAfter = clamp
		}

		delay = retryAfter
	}

	c.hooks.FireRetry(state.method, state.path, state.reason, delay)

	if c.debug && c.logger != nil {
		c.logger.Debug("retrying request", map[string]interface{}{
			"method": state.method,
			"path":   state.path,
			"reason": state.reason,
			"delay":  delay.String(),
		})
	}

	return delay
}

// jitteredBackoff waits a random duration in [base·2^n·0.5, base·2^n·1.5),
// where n is the zero-based retry number, capped at waitMax.
func jitteredBackoff(waitBase, waitMax time.Duration, attemptNum int) time.Duration {
	exp := waitBase << attemptNum
	if exp > waitMax || exp <= 0 {
		exp = waitMax
	}

	delay := exp/2 + time.Duration(rand.Int63n(int64(exp)))
	if delay > waitMax {
		delay = waitMax
	}

	return delay
}

func (c *Client) onAttempt(state *callState, req *http.Request, retryNumber int) {
	state.attempt = retryNumber + 1
	state.start = time.Now()

	c.hooks.FireRequest(state.method, state.path, state.attempt)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  state.method,
			"path":    state.path,
			"attempt": state.attempt,
			"headers": redactHeaders(req.Header),
		})
	}
}

func (c *Client) onResponse(state *callState, resp *http.Response) {
	elapsed := time.Since(state.start)
	requestID := resp.Header.Get("Request-Id")

	c.hooks.FireResponse(state.method, state.path, resp.StatusCode, requestID, state.attempt, elapsed)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      state.method,
			"path":        state.path,
			"status_code": resp.StatusCode,
			"request_id":  requestID,
			"attempt":     state.attempt,
			"elapsed_ms":  elapsed.Milliseconds(),
		})
	}
}

// redactHeaders copies headers for logging with credentials masked. The
// secret must never reach a log sink.
func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))

	for key := range headers {
		if key == "Authorization" {
			out[key] = constants.MaskedSecret

			continue
		}

		out[key] = headers.Get(key)
	}

	return out
}
