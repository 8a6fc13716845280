// Package stripeclient provides the primary entry point for constructing a
// payment API client that implements the stripe.Client interface.
//
// It layers endpoint normalization, the retrying HTTP transport, and the
// per-resource clients on top of the types defined in the stripe package.
// Most applications should import stripeclient to build a client, then use
// the returned stripe.Client to access resource-specific clients, for
// example Charges(), Customers(), Refunds().
//
// Quick start
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
//
//	  // Minimal: just a secret key.
//	  cli, err := stripeclient.NewWithAPIKey("sk_test_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit configuration:
//	  cli, err = stripeclient.New(&stripe.Config{
//	    APIKey:            "sk_test_...",
//	    MaxNetworkRetries: 3,
//	    AppInfo:           &stripe.AppInfo{Name: "my-app", Version: "1.0"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the stripe.Client interface
//	  charge, err := cli.Charges().Create(ctx, &stripe.ChargeCreateParams{
//	    Amount:   2000,
//	    Currency: stripe.CurrencyUSD,
//	    Customer: "cus_123",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = charge
//	}
//
// # Errors
//
// API failures surface as *stripe.Error values carrying the HTTP status,
// the service error taxonomy, and the request id for support correlation.
// Use errors.As or the stripe.IsNotFound family of predicates to branch on
// failure kinds.
package stripeclient
