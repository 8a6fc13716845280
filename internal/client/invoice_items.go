package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/form"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// InvoiceItemsClient implements stripe.InvoiceItemsClient.
type InvoiceItemsClient struct {
	httpClient *httpc.Client
}

// NewInvoiceItemsClient creates a new invoice items client.
func NewInvoiceItemsClient(httpClient *httpc.Client) *InvoiceItemsClient {
	return &InvoiceItemsClient{httpClient: httpClient}
}

// Create implements stripe.InvoiceItemsClient.Create.
func (c *InvoiceItemsClient) Create(ctx context.Context, params *stripe.InvoiceItemCreateParams) (*stripe.InvoiceItem, error) {
	if params == nil {
		params = &stripe.InvoiceItemCreateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding invoice item params: %w", err)
	}

	req := newRequest(http.MethodPost, "/invoiceitems", &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating invoice item: %w", err)
	}

	var item stripe.InvoiceItem
	if err := decodeResponse(c.httpClient, resp, &item); err != nil {
		return nil, fmt.Errorf("parsing invoice item response: %w", err)
	}

	return &item, nil
}

// Retrieve implements stripe.InvoiceItemsClient.Retrieve.
func (c *InvoiceItemsClient) Retrieve(ctx context.Context, id string, params *stripe.InvoiceItemRetrieveParams) (*stripe.InvoiceItem, error) {
	if params == nil {
		params = &stripe.InvoiceItemRetrieveParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding invoice item params: %w", err)
	}

	req := newRequest(http.MethodGet, "/invoiceitems/"+id, &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("getting invoice item: %w", err)
	}

	var item stripe.InvoiceItem
	if err := decodeResponse(c.httpClient, resp, &item); err != nil {
		return nil, fmt.Errorf("parsing invoice item response: %w", err)
	}

	return &item, nil
}

// Update implements stripe.InvoiceItemsClient.Update.
func (c *InvoiceItemsClient) Update(ctx context.Context, id string, params *stripe.InvoiceItemUpdateParams) (*stripe.InvoiceItem, error) {
	if params == nil {
		params = &stripe.InvoiceItemUpdateParams{}
	}

	body, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding invoice item params: %w", err)
	}

	req := newRequest(http.MethodPost, "/invoiceitems/"+id, &params.RequestParams)
	req.Body = body

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("updating invoice item: %w", err)
	}

	var item stripe.InvoiceItem
	if err := decodeResponse(c.httpClient, resp, &item); err != nil {
		return nil, fmt.Errorf("parsing invoice item response: %w", err)
	}

	return &item, nil
}

// Delete implements stripe.InvoiceItemsClient.Delete.
func (c *InvoiceItemsClient) Delete(ctx context.Context, id string, params *stripe.InvoiceItemDeleteParams) (*stripe.Deleted, error) {
	if params == nil {
		params = &stripe.InvoiceItemDeleteParams{}
	}

	req := newRequest(http.MethodDelete, "/invoiceitems/"+id, &params.RequestParams)

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deleting invoice item: %w", err)
	}

	var deleted stripe.Deleted
	if err := decodeResponse(c.httpClient, resp, &deleted); err != nil {
		return nil, fmt.Errorf("parsing invoice item delete response: %w", err)
	}

	return &deleted, nil
}

// List implements stripe.InvoiceItemsClient.List.
func (c *InvoiceItemsClient) List(ctx context.Context, params *stripe.InvoiceItemListParams) (*stripe.ListEnvelope[stripe.InvoiceItem], error) {
	if params == nil {
		params = &stripe.InvoiceItemListParams{}
	}

	query, err := form.Encode(params)
	if err != nil {
		return nil, fmt.Errorf("encoding invoice item params: %w", err)
	}

	req := newRequest(http.MethodGet, "/invoiceitems", &params.RequestParams)
	req.Query = query

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing invoice items: %w", err)
	}

	var result stripe.ListEnvelope[stripe.InvoiceItem]
	if err := decodeResponse(c.httpClient, resp, &result); err != nil {
		return nil, fmt.Errorf("parsing invoice items list response: %w", err)
	}

	return &result, nil
}

// ListAll implements stripe.InvoiceItemsClient.ListAll.
func (c *InvoiceItemsClient) ListAll(ctx context.Context, params *stripe.InvoiceItemListParams) *stripe.Iterator[stripe.InvoiceItem] {
	if params == nil {
		params = &stripe.InvoiceItemListParams{}
	}

	fetch := func(ctx context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.InvoiceItem], error) {
		page := *params
		page.StartingAfter = startingAfter

		return c.List(ctx, &page)
	}

	return stripe.NewIterator(ctx, fetch, params.StartingAfter, c.httpClient.Logger())
}
