package stripe

// RefundStatus is the lifecycle state of a refund. Open.
type RefundStatus string

// Known RefundStatus values.
const (
	RefundStatusPending        RefundStatus = "pending"
	RefundStatusRequiresAction RefundStatus = "requires_action"
	RefundStatusSucceeded      RefundStatus = "succeeded"
	RefundStatusFailed         RefundStatus = "failed"
	RefundStatusCanceled       RefundStatus = "canceled"
)

// Known implements OpenEnum.
func (s RefundStatus) Known() bool {
	switch s {
	case RefundStatusPending, RefundStatusRequiresAction, RefundStatusSucceeded,
		RefundStatusFailed, RefundStatusCanceled:
		return true
	}

	return false
}

// RefundReasonParam is the caller-supplied reason for a refund. Request-side
// enums are closed: callers must supply a recognized variant, so an Unknown
// value decoded from a response is never echoed back as a parameter.
type RefundReasonParam string

// RefundReasonParam values.
const (
	RefundReasonDuplicate           RefundReasonParam = "duplicate"
	RefundReasonFraudulent          RefundReasonParam = "fraudulent"
	RefundReasonRequestedByCustomer RefundReasonParam = "requested_by_customer"
)

// Refund represents a refund of a charge.
type Refund struct {
	Resource

	Amount   int64              `json:"amount"`
	Charge   Expandable[Charge] `json:"charge"`
	Created  int64              `json:"created"`
	Currency Currency           `json:"currency"`
	Metadata Metadata           `json:"metadata"`
	Reason   Nullable[string]   `json:"reason"`
	Status   RefundStatus       `json:"status"`
}

func (Refund) objectName() string {
	return "refund"
}

// RefundCreateParams are the parameters for creating a refund.
type RefundCreateParams struct {
	RequestParams
	ExpandParams

	Charge   string            `form:"charge"`
	Amount   *int64            `form:"amount"`
	Reason   RefundReasonParam `form:"reason"`
	Metadata Metadata          `form:"metadata"`
}

// RefundUpdateParams are the parameters for updating a refund.
type RefundUpdateParams struct {
	RequestParams
	ExpandParams

	Metadata Metadata `form:"metadata"`
}

// RefundRetrieveParams are the parameters for retrieving a refund.
type RefundRetrieveParams struct {
	RequestParams
	ExpandParams
}

// RefundListParams are the parameters for listing refunds.
type RefundListParams struct {
	ListParams

	Charge  string            `form:"charge"`
	Created *RangeQueryParams `form:"created"`
}
