package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/form"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// CustomersClient implements stripe.CustomersClient.
type CustomersClient struct {
	httpClient *httpc.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *httpc.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// Create implements stripe.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, params *stripe.CustomerCreateParams) (*stripe.Customer, error) {
	if params == nil {
		params = &stripe.CustomerCreateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding customer params: %w", err)
	}

	req := newRequest(http.MethodPost, "/customers", &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	var customer stripe.Customer
	if err := decodeResponse(c.httpClient, resp, &customer); err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Retrieve implements stripe.CustomersClient.Retrieve.
func (c *CustomersClient) Retrieve(ctx context.Context, id string, params *stripe.CustomerRetrieveParams) (*stripe.Customer, error) {
	if params == nil {
		params = &stripe.CustomerRetrieveParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding customer params: %w", err)
	}

	req := newRequest(http.MethodGet, "/customers/"+id, &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	var customer stripe.Customer
	if err := decodeResponse(c.httpClient, resp, &customer); err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Update implements stripe.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, params *stripe.CustomerUpdateParams) (*stripe.Customer, error) {
	if params == nil {
		params = &stripe.CustomerUpdateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding customer params: %w", err)
	}

	req := newRequest(http.MethodPost, "/customers/"+id, &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	var customer stripe.Customer
	if err := decodeResponse(c.httpClient, resp, &customer); err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Delete implements stripe.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string, params *stripe.CustomerDeleteParams) (*stripe.Deleted, error) {
	if params == nil {
		params = &stripe.CustomerDeleteParams{}
	}

	req := newRequest(http.MethodDelete, "/customers/"+id, &params.RequestParams)

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deleting customer: %w", err)
	}

	var deleted stripe.Deleted
	if err := decodeResponse(c.httpClient, resp, &deleted); err != nil {
		return nil, fmt.Errorf("parsing customer delete response: %w", err)
	}

	return &deleted, nil
}

// List implements stripe.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *stripe.CustomerListParams) (*stripe.ListEnvelope[stripe.Customer], error) {
	if params == nil {
		params = &stripe.CustomerListParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding customer params: %w", err)
	}

	req := newRequest(http.MethodGet, "/customers", &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var result stripe.ListEnvelope[stripe.Customer]
	if err := decodeResponse(c.httpClient, resp, &result); err != nil {
		return nil, fmt.Errorf("parsing customers list response: %w", err)
	}

	return &result, nil
}

// ListAll implements stripe.CustomersClient.ListAll.
func (c *CustomersClient) ListAll(ctx context.Context, params *stripe.CustomerListParams) *stripe.Iterator[stripe.Customer] {
	if params == nil {
		params = &stripe.CustomerListParams{}
	}

	fetch := func(ctx context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Customer], error) {
		page := *params
		page.StartingAfter = startingAfter

		return c.List(ctx, &page)
	}

	return stripe.NewIterator(ctx, fetch, params.StartingAfter, c.httpClient.Logger())
}

// Search implements stripe.CustomersClient.Search.
func (c *CustomersClient) Search(ctx context.Context, params *stripe.CustomerSearchParams) (*stripe.SearchEnvelope[stripe.Customer], error) {
	if params == nil {
		params = &stripe.CustomerSearchParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding customer params: %w", err)
	}

	req := newRequest(http.MethodGet, "/customers/search", &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching customers: %w", err)
	}

	var result stripe.SearchEnvelope[stripe.Customer]
	if err := decodeResponse(c.httpClient, resp, &result); err != nil {
		return nil, fmt.Errorf("parsing customers search response: %w", err)
	}

	return &result, nil
}

// SearchAll implements stripe.CustomersClient.SearchAll.
func (c *CustomersClient) SearchAll(ctx context.Context, params *stripe.CustomerSearchParams) *stripe.SearchIterator[stripe.Customer] {
	if params == nil {
		params = &stripe.CustomerSearchParams{}
	}

	fetch := func(ctx context.Context, page string) (*stripe.SearchEnvelope[stripe.Customer], error) {
		pageParams := *params
		pageParams.Page = page

		return c.Search(ctx, &pageParams)
	}

	return stripe.NewSearchIterator(ctx, fetch, params.Page)
}
