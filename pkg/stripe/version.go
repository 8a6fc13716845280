package stripe

// ClientVersion is the version of this library, reported in User-Agent.
const ClientVersion = "1.3.0"

// DefaultAPIVersion is the service API version this client's types were
// generated against, sent as the version header unless overridden.
const DefaultAPIVersion = "2024-06-20"

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.stripe.com/v1"
