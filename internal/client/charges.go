package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/form"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// ChargesClient implements stripe.ChargesClient.
type ChargesClient struct {
	httpClient *httpc.Client
}

// NewChargesClient creates a new charges client.
func NewChargesClient(httpClient *httpc.Client) *ChargesClient {
	return &ChargesClient{httpClient: httpClient}
}

// Create implements stripe.ChargesClient.Create.
func (c *ChargesClient) Create(ctx context.Context, params *stripe.ChargeCreateParams) (*stripe.Charge, error) {
	if params == nil {
		params = &stripe.ChargeCreateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	req := newRequest(http.MethodPost, "/charges", &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating charge: %w", err)
	}

	var charge stripe.Charge
	if err := decodeResponse(c.httpClient, resp, &charge); err != nil {
		return nil, fmt.Errorf("parsing charge response: %w", err)
	}

	return &charge, nil
}

// Retrieve implements stripe.ChargesClient.Retrieve.
func (c *ChargesClient) Retrieve(ctx context.Context, id string, params *stripe.ChargeRetrieveParams) (*stripe.Charge, error) {
	if params == nil {
		params = &stripe.ChargeRetrieveParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	req := newRequest(http.MethodGet, "/charges/"+id, &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("getting charge: %w", err)
	}

	var charge stripe.Charge
	if err := decodeResponse(c.httpClient, resp, &charge); err != nil {
		return nil, fmt.Errorf("parsing charge response: %w", err)
	}

	return &charge, nil
}

// Update implements stripe.ChargesClient.Update.
func (c *ChargesClient) Update(ctx context.Context, id string, params *stripe.ChargeUpdateParams) (*stripe.Charge, error) {
	if params == nil {
		params = &stripe.ChargeUpdateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	req := newRequest(http.MethodPost, "/charges/"+id, &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("updating charge: %w", err)
	}

	var charge stripe.Charge
	if err := decodeResponse(c.httpClient, resp, &charge); err != nil {
		return nil, fmt.Errorf("parsing charge response: %w", err)
	}

	return &charge, nil
}

// Capture implements stripe.ChargesClient.Capture.
func (c *ChargesClient) Capture(ctx context.Context, id string, params *stripe.ChargeCaptureParams) (*stripe.Charge, error) {
	if params == nil {
		params = &stripe.ChargeCaptureParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	req := newRequest(http.MethodPost, "/charges/"+id+"/capture", &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("capturing charge: %w", err)
	}

	var charge stripe.Charge
	if err := decodeResponse(c.httpClient, resp, &charge); err != nil {
		return nil, fmt.Errorf("parsing charge response: %w", err)
	}

	return &charge, nil
}

// List implements stripe.ChargesClient.List.
func (c *ChargesClient) List(ctx context.Context, params *stripe.ChargeListParams) (*stripe.ListEnvelope[stripe.Charge], error) {
	if params == nil {
		params = &stripe.ChargeListParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	req := newRequest(http.MethodGet, "/charges", &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}

	var result stripe.ListEnvelope[stripe.Charge]
	if err := decodeResponse(c.httpClient, resp, &result); err != nil {
		return nil, fmt.Errorf("parsing charges list response: %w", err)
	}

	return &result, nil
}

// ListAll implements stripe.ChargesClient.ListAll.
func (c *ChargesClient) ListAll(ctx context.Context, params *stripe.ChargeListParams) *stripe.Iterator[stripe.Charge] {
	if params == nil {
		params = &stripe.ChargeListParams{}
	}

	fetch := func(ctx context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Charge], error) {
		page := *params
		page.StartingAfter = startingAfter

		return c.List(ctx, &page)
	}

	return stripe.NewIterator(ctx, fetch, params.StartingAfter, c.httpClient.Logger())
}

// Search implements stripe.ChargesClient.Search.
func (c *ChargesClient) Search(ctx context.Context, params *stripe.ChargeSearchParams) (*stripe.SearchEnvelope[stripe.Charge], error) {
	if params == nil {
		params = &stripe.ChargeSearchParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding charge params: %w", err)
	}

	req := newRequest(http.MethodGet, "/charges/search", &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching charges: %w", err)
	}

	var result stripe.SearchEnvelope[stripe.Charge]
	if err := decodeResponse(c.httpClient, resp, &result); err != nil {
		return nil, fmt.Errorf("parsing charges search response: %w", err)
	}

	return &result, nil
}

// SearchAll implements stripe.ChargesClient.SearchAll.
func (c *ChargesClient) SearchAll(ctx context.Context, params *stripe.ChargeSearchParams) *stripe.SearchIterator[stripe.Charge] {
	if params == nil {
		params = &stripe.ChargeSearchParams{}
	}

	fetch := func(ctx context.Context, page string) (*stripe.SearchEnvelope[stripe.Charge], error) {
		pageParams := *params
		pageParams.Page = page

		return c.Search(ctx, &pageParams)
	}

	return stripe.NewSearchIterator(ctx, fetch, params.Page)
}
