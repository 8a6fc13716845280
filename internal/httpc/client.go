// Package httpc implements the HTTP transport layer: request assembly,
// authentication and version headers, the retry and idempotency policy,
// and mapping of service error bodies into the typed error taxonomy.
package httpc

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/ledgeline-io/stripe-client/internal/constants"
	"github.com/ledgeline-io/stripe-client/pkg/form"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// Request describes one API call: everything needed to produce a concrete
// HTTP request. Path parameters are already substituted; Do rejects paths
// that still contain placeholders.
type Request struct {
	Method string
	Path   string
	// Query is encoded into the URL query string (GET and DELETE).
	Query *form.Values
	// Body is the form-encoded request body (POST).
	Body *form.Values
	// Headers are extra headers for this call only.
	Headers map[string]string
	// IdempotencyKey deduplicates retries of side-effecting calls. When
	// empty on a POST or DELETE, a fresh random key is generated.
	IdempotencyKey string
	// StripeAccount overrides the client-default account header.
	StripeAccount string
}

// Response is the transport-level result of a call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	// RequestID is the Request-Id header, recorded on success and failure
	// for caller-side correlation.
	RequestID string
}

// Client wraps the underlying HTTP transport with the retry, idempotency,
// and header policy. A Client is immutable after construction and safe for
// concurrent use.
type Client struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	logger        stripe.Logger
	hooks         *stripe.Hooks
	debug         bool
	userAgent     string
	apiVersion    string
	stripeAccount string
	timeout       time.Duration
	maxRetries    int
	waitBase      time.Duration
	waitMax       time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger stripe.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithHooks sets the observability hooks.
func WithHooks(hooks *stripe.Hooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithRetryConfig tunes the retry ceiling and the backoff window.
func WithRetryConfig(maxRetries int, waitBase, waitMax time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.waitBase = waitBase
		c.waitMax = waitMax
	}
}

// WithTimeout bounds one logical call including retries and backoff.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the composed User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion overrides the pinned service API version header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithStripeAccount sets the default account override header.
func WithStripeAccount(account string) Option {
	return func(c *Client) {
		c.stripeAccount = account
	}
}

// WithHTTPClient injects the underlying HTTP transport. The transport owns
// TLS, pooling, and read timeouts; it must not retry or interpret statuses.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a transport client for the given endpoint and secret.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: cleanhttp.DefaultPooledClient(),
		userAgent:  "ledgeline-stripe-go/" + stripe.ClientVersion,
		apiVersion: stripe.DefaultAPIVersion,
		timeout:    constants.DefaultTimeoutBudget,
		maxRetries: constants.DefaultMaxNetworkRetries,
		waitBase:   constants.DefaultRetryWaitBase,
		waitMax:    constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Logger returns the configured logger, which may be nil.
func (c *Client) Logger() stripe.Logger {
	return c.logger
}

// Hooks returns the configured hooks, which may be nil.
func (c *Client) Hooks() *stripe.Hooks {
	return c.hooks
}

// BaseURL returns the normalized endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request with parameters in the query string.
func (c *Client) Get(ctx context.Context, path string, query *form.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a form-encoded body.
func (c *Client) Post(ctx context.Context, path string, body *form.Values, idempotencyKey string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, IdempotencyKey: idempotencyKey})
}

// Delete performs a DELETE request with parameters in the query string.
func (c *Client) Delete(ctx context.Context, path string, query *form.Values, idempotencyKey string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query, IdempotencyKey: idempotencyKey})
}

// Do performs one logical call: at most maxRetries+1 transport attempts
// sharing a single idempotency key, bounded by the timeout budget. On a
// non-2xx response it returns both the response and the typed error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if strings.Contains(req.Path, "{") {
		return nil, fmt.Errorf("%w: %s", stripe.ErrUnresolvedPath, req.Path)
	}

	idempotencyKey, err := c.idempotencyKey(req)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + req.Path
	if !req.Query.Empty() {
		fullURL += "?" + req.Query.Encode()
	}

	var body interface{}
	if req.Method == http.MethodPost {
		body = []byte(req.Body.Encode())
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	state := &callState{method: req.Method, path: req.Path}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	c.setHeaders(httpReq, req, idempotencyKey)

	resp, err := c.newRetryClient(state).Do(httpReq)
	if err != nil {
		return nil, (&stripe.Error{Kind: stripe.ErrorKindTransport}).WithCause(err)
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && c.logger != nil {
			c.logger.Warn("failed to close response body", map[string]interface{}{"error": closeErr.Error()})
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, (&stripe.Error{Kind: stripe.ErrorKindTransport}).WithCause(fmt.Errorf("reading response body: %w", err))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
		RequestID:  resp.Header.Get("Request-Id"),
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return response, nil
	}

	return response, stripe.NewAPIError(resp.StatusCode, respBody, response.RequestID, resp.Header, constants.MaxRawBodyBytes)
}

func (c *Client) idempotencyKey(req *Request) (string, error) {
	if !sideEffecting(req.Method) {
		return "", nil
	}

	if req.IdempotencyKey != "" {
		if len(req.IdempotencyKey) > constants.MaxIdempotencyKeyLength {
			return "", fmt.Errorf("%w: %d bytes", stripe.ErrIdempotencyKeyLong, len(req.IdempotencyKey))
		}

		return req.IdempotencyKey, nil
	}

	return generateIdempotencyKey()
}

func sideEffecting(method string) bool {
	return method == http.MethodPost || method == http.MethodDelete
}

// generateIdempotencyKey draws a fresh random key from the process-local
// random source.
func generateIdempotencyKey() (string, error) {
	buf := make([]byte, constants.IdempotencyKeyEntropy)

	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("generating idempotency key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request, idempotencyKey string) {
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Stripe-Version", c.apiVersion)
	httpReq.Header.Set("Accept", "application/json")

	if req.Method == http.MethodPost {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	account := c.stripeAccount
	if req.StripeAccount != "" {
		account = req.StripeAccount
	}

	if account != "" {
		httpReq.Header.Set("Stripe-Account", account)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// ctxErr returns the context error when the underlying error is a
// cancellation or deadline, nil otherwise.
func ctxErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return nil
}

func parseRetryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}

	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0, false
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, false
	}

	return time.Duration(seconds) * time.Second, true
}
