package stripe

// Currency is an ISO currency code in lowercase. Open: treat unseen codes
// as valid, the service supports more currencies than this client lists.
type Currency string

// Commonly used Currency values.
const (
	CurrencyAUD Currency = "aud"
	CurrencyCAD Currency = "cad"
	CurrencyCHF Currency = "chf"
	CurrencyEUR Currency = "eur"
	CurrencyGBP Currency = "gbp"
	CurrencyJPY Currency = "jpy"
	CurrencyUSD Currency = "usd"
)

// Known implements OpenEnum.
func (c Currency) Known() bool {
	switch c {
	case CurrencyAUD, CurrencyCAD, CurrencyCHF, CurrencyEUR, CurrencyGBP,
		CurrencyJPY, CurrencyUSD:
		return true
	}

	return false
}

// ChargeStatus is the lifecycle state of a charge. Open.
type ChargeStatus string

// Known ChargeStatus values.
const (
	ChargeStatusSucceeded ChargeStatus = "succeeded"
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusFailed    ChargeStatus = "failed"
)

// Known implements OpenEnum.
func (s ChargeStatus) Known() bool {
	switch s {
	case ChargeStatusSucceeded, ChargeStatusPending, ChargeStatusFailed:
		return true
	}

	return false
}

// Charge represents a charge on a payment source. Monetary amounts are
// integers in the currency's minor unit; timestamps are Unix seconds.
type Charge struct {
	Resource

	Amount         int64                 `json:"amount"`
	AmountCaptured int64                 `json:"amount_captured"`
	AmountRefunded int64                 `json:"amount_refunded"`
	Captured       bool                  `json:"captured"`
	Created        int64                 `json:"created"`
	Currency       Currency              `json:"currency"`
	Customer       *Expandable[Customer] `json:"customer"`
	Description    Nullable[string]      `json:"description"`
	Disputed       bool                  `json:"disputed"`
	FailureCode    Nullable[string]      `json:"failure_code"`
	FailureMessage Nullable[string]      `json:"failure_message"`
	Livemode       bool                  `json:"livemode"`
	Metadata       Metadata              `json:"metadata"`
	Paid           bool                  `json:"paid"`
	ReceiptEmail   Nullable[string]      `json:"receipt_email"`
	Refunded       bool                  `json:"refunded"`
	Refunds        *ListEnvelope[Refund] `json:"refunds"`
	Source         *PaymentSource        `json:"source"`
	Status         ChargeStatus          `json:"status"`
}

func (Charge) objectName() string {
	return "charge"
}

// ChargeCreateParams are the parameters for creating a charge.
type ChargeCreateParams struct {
	RequestParams
	ExpandParams

	Amount       int64    `form:"amount"`
	Currency     Currency `form:"currency"`
	Customer     string   `form:"customer"`
	Source       string   `form:"source"`
	Description  *string  `form:"description"`
	Capture      *bool    `form:"capture"`
	ReceiptEmail *string  `form:"receipt_email"`
	Metadata     Metadata `form:"metadata"`
}

// ChargeUpdateParams are the parameters for updating a charge.
type ChargeUpdateParams struct {
	RequestParams
	ExpandParams

	Customer     string   `form:"customer"`
	Description  *string  `form:"description"`
	ReceiptEmail *string  `form:"receipt_email"`
	Metadata     Metadata `form:"metadata"`
}

// ChargeCaptureParams are the parameters for capturing a pre-authorized
// charge.
type ChargeCaptureParams struct {
	RequestParams
	ExpandParams

	Amount       *int64  `form:"amount"`
	ReceiptEmail *string `form:"receipt_email"`
}

// ChargeRetrieveParams are the parameters for retrieving a charge.
type ChargeRetrieveParams struct {
	RequestParams
	ExpandParams
}

// ChargeListParams are the parameters for listing charges.
type ChargeListParams struct {
	ListParams

	Created  *RangeQueryParams `form:"created"`
	Customer string            `form:"customer"`
}

// ChargeSearchParams are the parameters for searching charges.
type ChargeSearchParams struct {
	SearchParams
}
