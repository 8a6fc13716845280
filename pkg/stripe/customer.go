package stripe

// Customer represents a customer of the connected business.
type Customer struct {
	Resource

	Balance       int64                      `json:"balance"`
	Created       int64                      `json:"created"`
	Currency      Currency                   `json:"currency"`
	DefaultSource *Expandable[PaymentSource] `json:"default_source"`
	Delinquent    bool                       `json:"delinquent"`
	Description   Nullable[string]           `json:"description"`
	Email         Nullable[string]           `json:"email"`
	InvoicePrefix string                     `json:"invoice_prefix"`
	Livemode      bool                       `json:"livemode"`
	Metadata      Metadata                   `json:"metadata"`
	Name          Nullable[string]           `json:"name"`
	Phone         Nullable[string]           `json:"phone"`
}

func (Customer) objectName() string {
	return "customer"
}

// CustomerCreateParams are the parameters for creating a customer.
type CustomerCreateParams struct {
	RequestParams
	ExpandParams

	Balance     *int64   `form:"balance"`
	Description *string  `form:"description"`
	Email       *string  `form:"email"`
	Name        *string  `form:"name"`
	Phone       *string  `form:"phone"`
	Source      string   `form:"source"`
	Metadata    Metadata `form:"metadata"`
}

// CustomerUpdateParams are the parameters for updating a customer. Pointer
// fields left nil are not sent; String("") explicitly unsets a field.
type CustomerUpdateParams struct {
	RequestParams
	ExpandParams

	Balance       *int64   `form:"balance"`
	DefaultSource string   `form:"default_source"`
	Description   *string  `form:"description"`
	Email         *string  `form:"email"`
	Name          *string  `form:"name"`
	Phone         *string  `form:"phone"`
	Metadata      Metadata `form:"metadata"`
}

// CustomerRetrieveParams are the parameters for retrieving a customer.
type CustomerRetrieveParams struct {
	RequestParams
	ExpandParams
}

// CustomerDeleteParams are the parameters for deleting a customer.
type CustomerDeleteParams struct {
	RequestParams
}

// CustomerListParams are the parameters for listing customers.
type CustomerListParams struct {
	ListParams

	Created *RangeQueryParams `form:"created"`
	Email   string            `form:"email"`
}

// CustomerSearchParams are the parameters for searching customers.
type CustomerSearchParams struct {
	SearchParams
}
