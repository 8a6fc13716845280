package stripe

import (
	"context"
	"time"
)

// ChargesClient exposes the charge endpoints.
type ChargesClient interface {
	Create(ctx context.Context, params *ChargeCreateParams) (*Charge, error)
	Retrieve(ctx context.Context, id string, params *ChargeRetrieveParams) (*Charge, error)
	Update(ctx context.Context, id string, params *ChargeUpdateParams) (*Charge, error)
	Capture(ctx context.Context, id string, params *ChargeCaptureParams) (*Charge, error)
	List(ctx context.Context, params *ChargeListParams) (*ListEnvelope[Charge], error)
	ListAll(ctx context.Context, params *ChargeListParams) *Iterator[Charge]
	Search(ctx context.Context, params *ChargeSearchParams) (*SearchEnvelope[Charge], error)
	SearchAll(ctx context.Context, params *ChargeSearchParams) *SearchIterator[Charge]
}

// CustomersClient exposes the customer endpoints.
type CustomersClient interface {
	Create(ctx context.Context, params *CustomerCreateParams) (*Customer, error)
	Retrieve(ctx context.Context, id string, params *CustomerRetrieveParams) (*Customer, error)
	Update(ctx context.Context, id string, params *CustomerUpdateParams) (*Customer, error)
	Delete(ctx context.Context, id string, params *CustomerDeleteParams) (*Deleted, error)
	List(ctx context.Context, params *CustomerListParams) (*ListEnvelope[Customer], error)
	ListAll(ctx context.Context, params *CustomerListParams) *Iterator[Customer]
	Search(ctx context.Context, params *CustomerSearchParams) (*SearchEnvelope[Customer], error)
	SearchAll(ctx context.Context, params *CustomerSearchParams) *SearchIterator[Customer]
}

// InvoiceItemsClient exposes the invoice item endpoints.
type InvoiceItemsClient interface {
	Create(ctx context.Context, params *InvoiceItemCreateParams) (*InvoiceItem, error)
	Retrieve(ctx context.Context, id string, params *InvoiceItemRetrieveParams) (*InvoiceItem, error)
	Update(ctx context.Context, id string, params *InvoiceItemUpdateParams) (*InvoiceItem, error)
	Delete(ctx context.Context, id string, params *InvoiceItemDeleteParams) (*Deleted, error)
	List(ctx context.Context, params *InvoiceItemListParams) (*ListEnvelope[InvoiceItem], error)
	ListAll(ctx context.Context, params *InvoiceItemListParams) *Iterator[InvoiceItem]
}

// RefundsClient exposes the refund endpoints.
type RefundsClient interface {
	Create(ctx context.Context, params *RefundCreateParams) (*Refund, error)
	Retrieve(ctx context.Context, id string, params *RefundRetrieveParams) (*Refund, error)
	Update(ctx context.Context, id string, params *RefundUpdateParams) (*Refund, error)
	List(ctx context.Context, params *RefundListParams) (*ListEnvelope[Refund], error)
	ListAll(ctx context.Context, params *RefundListParams) *Iterator[Refund]
}

// Client provides access to all resource-specific clients. A Client is
// logically immutable after construction and safe for concurrent use from
// any number of goroutines.
type Client interface {
	Charges() ChargesClient
	Customers() CustomersClient
	InvoiceItems() InvoiceItemsClient
	Refunds() RefundsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// AppInfo identifies the calling application in the composed User-Agent.
type AppInfo struct {
	Name    string
	Version string
	URL     string
}

// Config represents client configuration for building a stripe.Client.
//
// Only APIKey is required. BaseURL defaults to the production endpoint;
// point it at a local mock for tests. Credentials are always passed
// explicitly — the client never reads the environment.
type Config struct {
	// APIKey is the service secret, sent as a Bearer credential on every
	// request. It never appears in logs or hook metadata.
	APIKey string

	// BaseURL overrides the API endpoint. A missing scheme defaults to
	// https and a trailing slash is trimmed.
	BaseURL string

	// MaxNetworkRetries is the retry ceiling after the initial attempt for
	// connection failures and retryable statuses. Zero means the default
	// of 2; negative disables retries.
	MaxNetworkRetries int

	// Timeout bounds one logical call including all retries and backoff
	// sleeps. Defaults to 80 seconds.
	Timeout time.Duration

	// RetryWaitBase and RetryWaitMax tune the jittered exponential backoff
	// between attempts. Defaults: 500 ms base, 2 s cap.
	RetryWaitBase time.Duration
	RetryWaitMax  time.Duration

	// StripeAccount is attached as the account override header on every
	// request; per-call params can override it.
	StripeAccount string

	// APIVersion overrides the pinned service API version header.
	APIVersion string

	// AppInfo is appended to the User-Agent.
	AppInfo *AppInfo

	// UserAgentSuffix is appended after all other User-Agent components.
	UserAgentSuffix string

	// Logger is an optional structured logger used by the transport layer.
	Logger Logger

	// Debug enables verbose request/response logging through Logger, with
	// credentials redacted.
	Debug bool

	// Hooks are optional observability callbacks.
	Hooks *Hooks
}
