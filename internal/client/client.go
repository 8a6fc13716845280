// Package client implements the resource-level API surface on top of the
// form-encoding transport.
package client

import (
	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// Client implements the stripe.Client interface.
type Client struct {
	httpClient *httpc.Client
	logger     stripe.Logger

	// Resource clients
	charges      stripe.ChargesClient
	customers    stripe.CustomersClient
	invoiceItems stripe.InvoiceItemsClient
	refunds      stripe.RefundsClient
}

// New creates a resource client set on top of an already-configured
// transport.
func New(httpClient *httpc.Client) *Client {
	client := &Client{
		httpClient: httpClient,
		logger:     httpClient.Logger(),
	}

	client.initializeResourceClients()

	return client
}

// Charges implements stripe.Client.Charges.
func (c *Client) Charges() stripe.ChargesClient {
	return c.charges
}

// Customers implements stripe.Client.Customers.
func (c *Client) Customers() stripe.CustomersClient {
	return c.customers
}

// InvoiceItems implements stripe.Client.InvoiceItems.
func (c *Client) InvoiceItems() stripe.InvoiceItemsClient {
	return c.invoiceItems
}

// Refunds implements stripe.Client.Refunds.
func (c *Client) Refunds() stripe.RefundsClient {
	return c.refunds
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.charges = NewChargesClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.invoiceItems = NewInvoiceItemsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
}
