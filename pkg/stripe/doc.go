// Package stripe provides types, interfaces, and helpers for working with
// the payment service API.
//
// # Overview
//
// The stripe package defines the domain types (e.g., Charge, Customer,
// InvoiceItem, Refund) and the interfaces for resource-oriented clients
// (e.g., ChargesClient, CustomersClient). A concrete implementation of
// these clients is provided by the stripeclient package, which wires
// configuration, the retrying transport, and response decoding. Most
// consumers should import stripeclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ledgeline-io/stripe-client/pkg/stripe"
//	  "github.com/ledgeline-io/stripe-client/pkg/stripeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := stripeclient.NewWithAPIKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of charges
//	  charges, err := cli.Charges().List(ctx, &stripe.ChargeListParams{
//	    ListParams: stripe.ListParams{Limit: 50},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = charges
//	}
//
// # Parameters and encoding
//
// Request parameters are plain structs whose fields carry `form` tags; the
// form package serializes them into the service's bracketed
// form/query representation. Pointer fields express the three-way
// distinction between absent, explicitly empty, and set: a nil pointer is
// omitted, while stripe.String("") sends the unset sentinel.
//
// # Pagination
//
// List endpoints return one page per call. The ListAll and SearchAll
// methods return iterators that follow cursors transparently:
//
//	it := cli.Charges().ListAll(ctx, nil)
//	for it.HasNext() {
//	  charge, err := it.Next()
//	  if err != nil { break }
//	  _ = charge
//	}
//
// # Errors
//
// API failures are represented by *Error carrying the error taxonomy
// kind, the HTTP status, the service error code, and the request id.
// Helpers such as IsNotFound, IsRateLimited, and IsRequestFailed make it
// easy to branch on common cases.
//
// # Concurrency
//
// Clients are immutable after construction and safe for concurrent use.
// BatchExecutor runs independent operations concurrently with a bounded
// worker limit and per-operation timeouts.
package stripe
