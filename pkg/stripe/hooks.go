package stripe

import "time"

// Hooks are observability callbacks invoked synchronously around each call.
// Implementations must return quickly and must not block; any field may be
// left nil. The hooks are given only redacted request metadata — never the
// API secret or raw credentials.
type Hooks struct {
	// OnRequest fires before each transport attempt. attempt is 1-based.
	OnRequest func(method, path string, attempt int)

	// OnResponse fires after each attempt that produced a response.
	OnResponse func(method, path string, status int, requestID string, attempt int, elapsed time.Duration)

	// OnRetry fires when an attempt will be retried, with the reason and
	// the delay that will be slept before the next attempt.
	OnRetry func(method, path, reason string, delay time.Duration)

	// OnUnknownEnum fires once per open-enum value the decoder did not
	// recognize.
	OnUnknownEnum func(typeName, rawValue string)
}

// FireRequest invokes OnRequest when set. All Fire helpers are safe on a
// nil receiver.
func (h *Hooks) FireRequest(method, path string, attempt int) {
	if h != nil && h.OnRequest != nil {
		h.OnRequest(method, path, attempt)
	}
}

// FireResponse invokes OnResponse when set.
func (h *Hooks) FireResponse(method, path string, status int, requestID string, attempt int, elapsed time.Duration) {
	if h != nil && h.OnResponse != nil {
		h.OnResponse(method, path, status, requestID, attempt, elapsed)
	}
}

// FireRetry invokes OnRetry when set.
func (h *Hooks) FireRetry(method, path, reason string, delay time.Duration) {
	if h != nil && h.OnRetry != nil {
		h.OnRetry(method, path, reason, delay)
	}
}

// FireUnknownEnum invokes OnUnknownEnum when set.
func (h *Hooks) FireUnknownEnum(typeName, rawValue string) {
	if h != nil && h.OnUnknownEnum != nil {
		h.OnUnknownEnum(typeName, rawValue)
	}
}
