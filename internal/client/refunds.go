package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/form"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// RefundsClient implements stripe.RefundsClient.
type RefundsClient struct {
	httpClient *httpc.Client
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *httpc.Client) *RefundsClient {
	return &RefundsClient{httpClient: httpClient}
}

// Create implements stripe.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, params *stripe.RefundCreateParams) (*stripe.Refund, error) {
	if params == nil {
		params = &stripe.RefundCreateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding refund params: %w", err)
	}

	req := newRequest(http.MethodPost, "/refunds", &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	var refund stripe.Refund
	if err := decodeResponse(c.httpClient, resp, &refund); err != nil {
		return nil, fmt.Errorf("parsing refund response: %w", err)
	}

	return &refund, nil
}

// Retrieve implements stripe.RefundsClient.Retrieve.
func (c *RefundsClient) Retrieve(ctx context.Context, id string, params *stripe.RefundRetrieveParams) (*stripe.Refund, error) {
	if params == nil {
		params = &stripe.RefundRetrieveParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding refund params: %w", err)
	}

	req := newRequest(http.MethodGet, "/refunds/"+id, &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("getting refund: %w", err)
	}

	var refund stripe.Refund
	if err := decodeResponse(c.httpClient, resp, &refund); err != nil {
		return nil, fmt.Errorf("parsing refund response: %w", err)
	}

	return &refund, nil
}

// Update implements stripe.RefundsClient.Update.
func (c *RefundsClient) Update(ctx context.Context, id string, params *stripe.RefundUpdateParams) (*stripe.Refund, error) {
	if params == nil {
		params = &stripe.RefundUpdateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding refund params: %w", err)
	}

	req := newRequest(http.MethodPost, "/refunds/"+id, &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("updating refund: %w", err)
	}

	var refund stripe.Refund
	if err := decodeResponse(c.httpClient, resp, &refund); err != nil {
		return nil, fmt.Errorf("parsing refund response: %w", err)
	}

	return &refund, nil
}

// List implements stripe.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, params *stripe.RefundListParams) (*stripe.ListEnvelope[stripe.Refund], error) {
	if params == nil {
		params = &stripe.RefundListParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding refund params: %w", err)
	}

	req := newRequest(http.MethodGet, "/refunds", &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing refunds: %w", err)
	}

	var result stripe.ListEnvelope[stripe.Refund]
	if err := decodeResponse(c.httpClient, resp, &result); err != nil {
		return nil, fmt.Errorf("parsing refunds list response: %w", err)
	}

	return &result, nil
}

// ListAll implements stripe.RefundsClient.ListAll.
func (c *RefundsClient) ListAll(ctx context.Context, params *stripe.RefundListParams) *stripe.Iterator[stripe.Refund] {
	if params == nil {
		params = &stripe.RefundListParams{}
	}

	fetch := func(ctx context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Refund], error) {
		page := *params
		page.StartingAfter = startingAfter

		return c.List(ctx, &page)
	}

	return stripe.NewIterator(ctx, fetch, params.StartingAfter, c.httpClient.Logger())
}
