package stripe

import "encoding/json"

// CardBrand is the card network. Open: the service adds brands without
// version bumps.
type CardBrand string

// Known CardBrand values.
const (
	CardBrandAmex       CardBrand = "amex"
	CardBrandDiners     CardBrand = "diners"
	CardBrandDiscover   CardBrand = "discover"
	CardBrandJCB        CardBrand = "jcb"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandUnionPay   CardBrand = "unionpay"
	CardBrandVisa       CardBrand = "visa"
)

// Known implements OpenEnum.
func (b CardBrand) Known() bool {
	switch b {
	case CardBrandAmex, CardBrandDiners, CardBrandDiscover, CardBrandJCB,
		CardBrandMastercard, CardBrandUnionPay, CardBrandVisa:
		return true
	}

	return false
}

// CardFunding is how a card is funded. Open.
type CardFunding string

// Known CardFunding values.
const (
	CardFundingCredit  CardFunding = "credit"
	CardFundingDebit   CardFunding = "debit"
	CardFundingPrepaid CardFunding = "prepaid"
	CardFundingUnknown CardFunding = "unknown"
)

// Known implements OpenEnum.
func (f CardFunding) Known() bool {
	switch f {
	case CardFundingCredit, CardFundingDebit, CardFundingPrepaid, CardFundingUnknown:
		return true
	}

	return false
}

// Card is a card payment source.
type Card struct {
	Resource

	Brand    CardBrand        `json:"brand"`
	Country  string           `json:"country"`
	Customer Nullable[string] `json:"customer"`
	ExpMonth int64            `json:"exp_month"`
	ExpYear  int64            `json:"exp_year"`
	Funding  CardFunding      `json:"funding"`
	Last4    string           `json:"last4"`
	Name     Nullable[string] `json:"name"`
}

func (Card) objectName() string {
	return "card"
}

// BankAccountStatus is the verification state of a bank account. Open.
type BankAccountStatus string

// Known BankAccountStatus values.
const (
	BankAccountStatusNew                BankAccountStatus = "new"
	BankAccountStatusValidated          BankAccountStatus = "validated"
	BankAccountStatusVerified           BankAccountStatus = "verified"
	BankAccountStatusVerificationFailed BankAccountStatus = "verification_failed"
	BankAccountStatusErrored            BankAccountStatus = "errored"
)

// Known implements OpenEnum.
func (s BankAccountStatus) Known() bool {
	switch s {
	case BankAccountStatusNew, BankAccountStatusValidated, BankAccountStatusVerified,
		BankAccountStatusVerificationFailed, BankAccountStatusErrored:
		return true
	}

	return false
}

// BankAccount is a bank account payment source.
type BankAccount struct {
	Resource

	AccountHolderName Nullable[string]  `json:"account_holder_name"`
	BankName          string            `json:"bank_name"`
	Country           string            `json:"country"`
	Currency          Currency          `json:"currency"`
	Last4             string            `json:"last4"`
	RoutingNumber     string            `json:"routing_number"`
	Status            BankAccountStatus `json:"status"`
}

func (BankAccount) objectName() string {
	return "bank_account"
}

// PaymentSource is a polymorphic payment source discriminated by the
// `object` field. The sum is open: an unseen discriminator decodes with
// only ID and Object populated, never a failure, because the service adds
// new payment method kinds over time.
type PaymentSource struct {
	ID     string
	Object string

	Card        *Card
	BankAccount *BankAccount
}

// ObjectID implements Identifiable.
func (s PaymentSource) ObjectID() string {
	return s.ID
}

// UnmarshalJSON dispatches on the `object` discriminator.
func (s *PaymentSource) UnmarshalJSON(data []byte) error {
	var head struct {
		ID     string `json:"id"`
		Object string `json:"object"`
	}

	err := json.Unmarshal(data, &head)
	if err != nil {
		return err
	}

	s.ID = head.ID
	s.Object = head.Object

	switch head.Object {
	case "card":
		var card Card

		err := json.Unmarshal(data, &card)
		if err != nil {
			return err
		}

		s.Card = &card
	case "bank_account":
		var account BankAccount

		err := json.Unmarshal(data, &account)
		if err != nil {
			return err
		}

		s.BankAccount = &account
	}

	return nil
}

// MarshalJSON collapses to the id form, mirroring Expandable.
func (s PaymentSource) MarshalJSON() ([]byte, error) {
	if s.ID == "" {
		return []byte("null"), nil
	}

	return json.Marshal(s.ID)
}
