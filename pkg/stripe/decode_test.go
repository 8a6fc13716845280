package stripe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

func TestUnmarshal_Charge(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": "ch_1",
		"object": "charge",
		"amount": 100,
		"currency": "usd",
		"status": "succeeded",
		"paid": true,
		"metadata": {"order": "o_42"}
	}`)

	var charge stripe.Charge

	err := stripe.Unmarshal(body, &charge, nil)
	require.NoError(t, err)

	assert.Equal(t, "ch_1", charge.ID)
	assert.Equal(t, int64(100), charge.Amount)
	assert.Equal(t, stripe.CurrencyUSD, charge.Currency)
	assert.Equal(t, stripe.ChargeStatusSucceeded, charge.Status)
	assert.True(t, charge.Paid)
	assert.Equal(t, "o_42", charge.Metadata["order"])
}

func TestUnmarshal_UnknownKeysDropped(t *testing.T) {
	t.Parallel()

	body := []byte(`{"id": "ch_1", "object": "charge", "amount": 5, "brand_new_field": {"deep": true}}`)

	var charge stripe.Charge

	err := stripe.Unmarshal(body, &charge, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), charge.Amount)
}

func TestUnmarshal_UnknownEnumPreservedAndReported(t *testing.T) {
	t.Parallel()

	body := []byte(`{"id": "ch_1", "object": "charge", "status": "partially_refunded"}`)

	var reported []string

	hooks := &stripe.Hooks{
		OnUnknownEnum: func(typeName, rawValue string) {
			reported = append(reported, typeName+"="+rawValue)
		},
	}

	var charge stripe.Charge

	err := stripe.Unmarshal(body, &charge, hooks)
	require.NoError(t, err)

	// The raw value survives decoding and compares unequal to every
	// known variant.
	assert.Equal(t, stripe.ChargeStatus("partially_refunded"), charge.Status)
	assert.False(t, charge.Status.Known())

	require.Len(t, reported, 1)
	assert.Equal(t, "stripe.ChargeStatus=partially_refunded", reported[0])
}

func TestUnmarshal_KnownEnumsNotReported(t *testing.T) {
	t.Parallel()

	body := []byte(`{"id": "ch_1", "object": "charge", "currency": "eur", "status": "pending"}`)

	calls := 0
	hooks := &stripe.Hooks{
		OnUnknownEnum: func(string, string) { calls++ },
	}

	var charge stripe.Charge

	err := stripe.Unmarshal(body, &charge, hooks)
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestUnmarshal_MalformedJSON(t *testing.T) {
	t.Parallel()

	var charge stripe.Charge

	err := stripe.Unmarshal([]byte(`{"id": "ch_1",`), &charge, nil)
	require.Error(t, err)

	var decodeErr *stripe.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, stripe.DecodeMalformed, decodeErr.Reason)
}

func TestUnmarshal_WrongShape(t *testing.T) {
	t.Parallel()

	var charge stripe.Charge

	err := stripe.Unmarshal([]byte(`{"id": "ch_1", "object": "charge", "amount": "not a number"}`), &charge, nil)
	require.Error(t, err)

	var decodeErr *stripe.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, stripe.DecodeShape, decodeErr.Reason)
	assert.Equal(t, "amount", decodeErr.Path)
}

func TestUnmarshal_MissingID(t *testing.T) {
	t.Parallel()

	var charge stripe.Charge

	err := stripe.Unmarshal([]byte(`{"object": "charge", "amount": 100}`), &charge, nil)
	require.Error(t, err)

	var decodeErr *stripe.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, stripe.DecodeMissing, decodeErr.Reason)
	assert.Equal(t, "id", decodeErr.Field)
}

func TestUnmarshal_ListEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("valid list", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"object": "list", "data": [{"id": "ch_1", "object": "charge"}], "has_more": true, "url": "/v1/charges"}`)

		var envelope stripe.ListEnvelope[stripe.Charge]

		err := stripe.Unmarshal(body, &envelope, nil)
		require.NoError(t, err)
		require.Len(t, envelope.Data, 1)
		assert.True(t, envelope.HasMore)
	})

	t.Run("empty data array is valid", func(t *testing.T) {
		t.Parallel()

		var envelope stripe.ListEnvelope[stripe.Charge]

		err := stripe.Unmarshal([]byte(`{"object": "list", "data": [], "has_more": false}`), &envelope, nil)
		require.NoError(t, err)
		assert.Empty(t, envelope.Data)
	})

	t.Run("missing data array is a decode error", func(t *testing.T) {
		t.Parallel()

		var envelope stripe.ListEnvelope[stripe.Charge]

		err := stripe.Unmarshal([]byte(`{"object": "list", "has_more": false}`), &envelope, nil)
		require.Error(t, err)

		var decodeErr *stripe.DecodeError

		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, stripe.DecodeMissing, decodeErr.Reason)
		assert.Equal(t, "data", decodeErr.Field)
	})
}

func TestUnmarshal_SearchEnvelope(t *testing.T) {
	t.Parallel()

	body := []byte(`{"object": "search_result", "data": [{"id": "ch_1", "object": "charge"}], "has_more": true, "next_page": "page_2"}`)

	var envelope stripe.SearchEnvelope[stripe.Charge]

	err := stripe.Unmarshal(body, &envelope, nil)
	require.NoError(t, err)
	assert.True(t, envelope.NextPage.Valid)
	assert.Equal(t, "page_2", envelope.NextPage.Value)

	var last stripe.SearchEnvelope[stripe.Charge]

	err = stripe.Unmarshal([]byte(`{"object": "search_result", "data": [], "has_more": false, "next_page": null}`), &last, nil)
	require.NoError(t, err)
	assert.True(t, last.NextPage.Null())
}

func TestUnmarshal_ScansNestedEnums(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"object": "list",
		"data": [
			{"id": "ch_1", "object": "charge", "status": "succeeded"},
			{"id": "ch_2", "object": "charge", "status": "warming_up"}
		],
		"has_more": false
	}`)

	var reported []string

	hooks := &stripe.Hooks{
		OnUnknownEnum: func(_, rawValue string) { reported = append(reported, rawValue) },
	}

	var envelope stripe.ListEnvelope[stripe.Charge]

	err := stripe.Unmarshal(body, &envelope, hooks)
	require.NoError(t, err)
	assert.Equal(t, []string{"warming_up"}, reported)
}
