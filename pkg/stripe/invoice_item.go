package stripe

// InvoiceItem represents a pending charge or credit to add to a customer's
// next invoice.
type InvoiceItem struct {
	Resource

	Amount       int64                `json:"amount"`
	Currency     Currency             `json:"currency"`
	Customer     Expandable[Customer] `json:"customer"`
	Date         int64                `json:"date"`
	Description  Nullable[string]     `json:"description"`
	Discountable bool                 `json:"discountable"`
	Livemode     bool                 `json:"livemode"`
	Metadata     Metadata             `json:"metadata"`
	Proration    bool                 `json:"proration"`
	Quantity     int64                `json:"quantity"`
}

func (InvoiceItem) objectName() string {
	return "invoiceitem"
}

// InvoiceItemDiscountParams applies either a coupon or a discount to an
// invoice item; exactly one of the two should be set.
type InvoiceItemDiscountParams struct {
	Coupon   string `form:"coupon"`
	Discount string `form:"discount"`
}

// InvoiceItemCreateParams are the parameters for creating an invoice item.
type InvoiceItemCreateParams struct {
	RequestParams
	ExpandParams

	Customer    string                      `form:"customer"`
	Amount      *int64                      `form:"amount"`
	Currency    Currency                    `form:"currency"`
	Description *string                     `form:"description"`
	Discounts   []InvoiceItemDiscountParams `form:"discounts"`
	Quantity    *int64                      `form:"quantity"`
	Metadata    Metadata                    `form:"metadata"`
}

// InvoiceItemUpdateParams are the parameters for updating an invoice item.
type InvoiceItemUpdateParams struct {
	RequestParams
	ExpandParams

	Amount      *int64                      `form:"amount"`
	Description *string                     `form:"description"`
	Discounts   []InvoiceItemDiscountParams `form:"discounts"`
	Quantity    *int64                      `form:"quantity"`
	Metadata    Metadata                    `form:"metadata"`
}

// InvoiceItemRetrieveParams are the parameters for retrieving an invoice
// item.
type InvoiceItemRetrieveParams struct {
	RequestParams
	ExpandParams
}

// InvoiceItemDeleteParams are the parameters for deleting an invoice item.
type InvoiceItemDeleteParams struct {
	RequestParams
}

// InvoiceItemListParams are the parameters for listing invoice items.
type InvoiceItemListParams struct {
	ListParams

	Created  *RangeQueryParams `form:"created"`
	Customer string            `form:"customer"`
	Pending  *bool             `form:"pending"`
}
