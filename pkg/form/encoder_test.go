package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgeline-io/stripe-client/pkg/form"
)

type discountParams struct {
	Coupon   string `form:"coupon"`
	Discount string `form:"discount"`
}

type invoiceItemParams struct {
	Customer  string            `form:"customer"`
	Discounts []discountParams  `form:"discounts"`
	Metadata  map[string]string `form:"metadata"`
}

type commonParams struct {
	Expand []string `form:"expand"`
}

type chargeParams struct {
	commonParams

	Amount       int64   `form:"amount"`
	Currency     string  `form:"currency"`
	Description  *string `form:"description"`
	Capture      *bool   `form:"capture"`
	ReceiptEmail *string `form:"receipt_email"`
	Internal     string  `form:"-"`
}

type ownerParams struct {
	Address addressParams `form:"address"`
}

type addressParams struct {
	City string `form:"city"`
	Line string `form:"line1"`
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func int64Ptr(i int64) *int64 { return &i }

func TestEncode_NestedSequencesAndMaps(t *testing.T) {
	t.Parallel()

	params := &invoiceItemParams{
		Customer: "cus_1",
		Discounts: []discountParams{
			{Coupon: "c1"},
			{Discount: "d1"},
		},
		Metadata: map[string]string{"k": "v"},
	}

	values, err := form.Encode(params)
	require.NoError(t, err)

	assert.Equal(t, "customer=cus_1&discounts[0][coupon]=c1&discounts[1][discount]=d1&metadata[k]=v", values.Encode())
}

func TestEncode_AbsentVersusExplicitEmpty(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer is absent", func(t *testing.T) {
		t.Parallel()

		values, err := form.Encode(&chargeParams{Amount: 100})
		require.NoError(t, err)
		assert.Equal(t, "amount=100", values.Encode())
	})

	t.Run("pointer to empty string emits the unset sentinel", func(t *testing.T) {
		t.Parallel()

		values, err := form.Encode(&chargeParams{
			Amount:      100,
			Description: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "amount=100&description=", values.Encode())
	})

	t.Run("non-pointer zero values are omitted", func(t *testing.T) {
		t.Parallel()

		values, err := form.Encode(&chargeParams{})
		require.NoError(t, err)
		assert.Equal(t, "", values.Encode())
	})

	t.Run("explicit false is emitted", func(t *testing.T) {
		t.Parallel()

		values, err := form.Encode(&chargeParams{Capture: boolPtr(false)})
		require.NoError(t, err)
		assert.Equal(t, "capture=false", values.Encode())
	})

	t.Run("explicit zero integer is emitted", func(t *testing.T) {
		t.Parallel()

		type p struct {
			Quantity *int64 `form:"quantity"`
		}

		values, err := form.Encode(&p{Quantity: int64Ptr(0)})
		require.NoError(t, err)
		assert.Equal(t, "quantity=0", values.Encode())
	})
}

func TestEncode_ScalarSequence(t *testing.T) {
	t.Parallel()

	params := &chargeParams{
		commonParams: commonParams{Expand: []string{"customer", "refunds"}},
		Amount:       50,
	}

	values, err := form.Encode(params)
	require.NoError(t, err)

	// Embedded struct fields flatten into the parent; scalar sequences
	// repeat the key with a [] suffix.
	assert.Equal(t, "expand[]=customer&expand[]=refunds&amount=50", values.Encode())
}

func TestEncode_EmptyContainersOmitted(t *testing.T) {
	t.Parallel()

	params := &invoiceItemParams{
		Customer:  "cus_1",
		Discounts: []discountParams{},
		Metadata:  map[string]string{},
	}

	values, err := form.Encode(params)
	require.NoError(t, err)
	assert.Equal(t, "customer=cus_1", values.Encode())
}

func TestEncode_NestedStruct(t *testing.T) {
	t.Parallel()

	type p struct {
		Owner ownerParams `form:"owner"`
	}

	values, err := form.Encode(&p{Owner: ownerParams{Address: addressParams{City: "Berlin", Line: "Unter den Linden 1"}}})
	require.NoError(t, err)

	assert.Equal(t, "Berlin", values.Get("owner[address][city]"))
	assert.Equal(t, "owner[address][city]=Berlin&owner[address][line1]=Unter+den+Linden+1", values.Encode())
}

func TestEncode_ReservedCharactersEscaped(t *testing.T) {
	t.Parallel()

	params := &invoiceItemParams{
		Customer: "cus&1=x",
		Metadata: map[string]string{"a[b]": "v&w"},
	}

	values, err := form.Encode(params)
	require.NoError(t, err)

	assert.Equal(t, "customer=cus%261%3Dx&metadata[a%5Bb%5D]=v%26w", values.Encode())
}

func TestEncode_MapKeysSorted(t *testing.T) {
	t.Parallel()

	params := &invoiceItemParams{
		Metadata: map[string]string{"zeta": "1", "alpha": "2", "mid": "3"},
	}

	values, err := form.Encode(params)
	require.NoError(t, err)
	assert.Equal(t, "metadata[alpha]=2&metadata[mid]=3&metadata[zeta]=1", values.Encode())
}

func TestEncode_FloatPrecision(t *testing.T) {
	t.Parallel()

	type p struct {
		Rate   float32 `form:"rate"`
		Weight float64 `form:"weight"`
	}

	values, err := form.Encode(&p{Rate: 1.1, Weight: 1.1})
	require.NoError(t, err)

	// A float32 formats at 32-bit precision, not as its widened
	// float64 value.
	assert.Equal(t, "rate=1.1&weight=1.1", values.Encode())
}

func TestEncode_DecimalStringPassthrough(t *testing.T) {
	t.Parallel()

	type p struct {
		Rate string `form:"rate"`
	}

	values, err := form.Encode(&p{Rate: "0.0000000001"})
	require.NoError(t, err)
	assert.Equal(t, "rate=0.0000000001", values.Encode())
}

func TestEncode_NilAndUnsupported(t *testing.T) {
	t.Parallel()

	t.Run("nil params encode to nothing", func(t *testing.T) {
		t.Parallel()

		values, err := form.Encode(nil)
		require.NoError(t, err)
		assert.True(t, values.Empty())

		var params *chargeParams

		values, err = form.Encode(params)
		require.NoError(t, err)
		assert.True(t, values.Empty())
	})

	t.Run("non-struct input is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := form.Encode("not a struct")
		require.Error(t, err)
		assert.ErrorIs(t, err, form.ErrUnsupportedType)
	})

	t.Run("unsupported field type is rejected", func(t *testing.T) {
		t.Parallel()

		type p struct {
			Ch chan int `form:"ch"`
		}

		_, err := form.Encode(&p{Ch: make(chan int)})
		require.Error(t, err)
		assert.ErrorIs(t, err, form.ErrUnsupportedType)
	})
}

func TestValues_Operations(t *testing.T) {
	t.Parallel()

	values := form.NewValues()
	assert.True(t, values.Empty())

	values.Add("a", "1")
	values.Add("b", "2")
	values.Add("a", "3")

	assert.False(t, values.Empty())
	assert.Equal(t, "1", values.Get("a"))
	assert.Equal(t, []string{"1", "3"}, values.GetAll("a"))
	assert.Equal(t, "a=1&b=2&a=3", values.Encode())

	values.Set("a", "9")
	assert.Equal(t, "a=9&b=2", values.Encode())

	values.Set("c", "7")
	assert.Equal(t, "a=9&b=2&c=7", values.Encode())
}
