// Package stripeclient provides the main entry point for creating payment
// API clients.
package stripeclient

import (
	"strings"

	"github.com/ledgeline-io/stripe-client/internal/client"
	"github.com/ledgeline-io/stripe-client/internal/constants"
	"github.com/ledgeline-io/stripe-client/internal/httpc"
	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

// New creates a new API client from the given configuration.
func New(config *stripe.Config) (stripe.Client, error) {
	if config == nil {
		return nil, stripe.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, stripe.ErrAPIKeyRequired
	}

	baseURL := normalizeBaseURL(config.BaseURL)
	opts := createTransportOptions(config)

	httpClient := httpc.NewClient(baseURL, config.APIKey, opts...)

	return client.New(httpClient), nil
}

// NewWithAPIKey creates a new client with just a secret key and defaults
// for everything else.
func NewWithAPIKey(apiKey string) (stripe.Client, error) {
	return New(&stripe.Config{APIKey: apiKey})
}

// normalizeBaseURL applies the endpoint default, defaults a missing scheme
// to https, and trims a trailing slash.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return stripe.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// createTransportOptions builds transport options from config.
func createTransportOptions(config *stripe.Config) []httpc.Option {
	var opts []httpc.Option

	if config.Logger != nil {
		opts = append(opts, httpc.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, httpc.WithDebug(true))
	}

	if config.Hooks != nil {
		opts = append(opts, httpc.WithHooks(config.Hooks))
	}

	if retryOpt, ok := createRetryOption(config); ok {
		opts = append(opts, retryOpt)
	}

	if config.Timeout > 0 {
		opts = append(opts, httpc.WithTimeout(config.Timeout))
	}

	if userAgent := composeUserAgent(config); userAgent != "" {
		opts = append(opts, httpc.WithUserAgent(userAgent))
	}

	if config.APIVersion != "" {
		opts = append(opts, httpc.WithAPIVersion(config.APIVersion))
	}

	if config.StripeAccount != "" {
		opts = append(opts, httpc.WithStripeAccount(config.StripeAccount))
	}

	return opts
}

// createRetryOption resolves the retry knobs. A zero ceiling keeps the
// transport default; a negative ceiling disables retries entirely.
func createRetryOption(config *stripe.Config) (httpc.Option, bool) {
	if config.MaxNetworkRetries == 0 && config.RetryWaitBase == 0 && config.RetryWaitMax == 0 {
		return nil, false
	}

	maxRetries := config.MaxNetworkRetries
	if maxRetries < 0 {
		maxRetries = 0
	} else if maxRetries == 0 {
		maxRetries = constants.DefaultMaxNetworkRetries
	}

	waitBase := constants.DefaultRetryWaitBase
	if config.RetryWaitBase > 0 {
		waitBase = config.RetryWaitBase
	}

	waitMax := constants.DefaultRetryWaitMax
	if config.RetryWaitMax > 0 {
		waitMax = config.RetryWaitMax
	}

	return httpc.WithRetryConfig(maxRetries, waitBase, waitMax), true
}

// composeUserAgent assembles the User-Agent from the library version, the
// calling application, and any configured suffix.
func composeUserAgent(config *stripe.Config) string {
	parts := []string{"ledgeline-stripe-go/" + stripe.ClientVersion}

	if config.AppInfo != nil && config.AppInfo.Name != "" {
		app := config.AppInfo.Name
		if config.AppInfo.Version != "" {
			app += "/" + config.AppInfo.Version
		}

		if config.AppInfo.URL != "" {
			app += " (" + config.AppInfo.URL + ")"
		}

		parts = append(parts, app)
	}

	if config.UserAgentSuffix != "" {
		parts = append(parts, config.UserAgentSuffix)
	}

	if len(parts) == 1 {
		// The transport already defaults to the bare library identifier.
		return ""
	}

	return strings.Join(parts, " ")
}
