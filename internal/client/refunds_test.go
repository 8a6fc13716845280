package client

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

func TestRefundsCreate(t *testing.T) {
	t.Run("full refund", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/refunds", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, "charge=ch_1&reason=requested_by_customer", string(body))

			writeJSON(t, w, http.StatusOK, `{
				"id": "re_1",
				"object": "refund",
				"charge": "ch_1",
				"amount": 2000,
				"status": "succeeded"
			}`)
		})

		refund, err := client.Refunds().Create(context.Background(), &stripe.RefundCreateParams{
			Charge: "ch_1",
			Reason: stripe.RefundReasonRequestedByCustomer,
		})
		require.NoError(t, err)

		assert.Equal(t, "re_1", refund.ID)
		assert.Equal(t, "ch_1", refund.Charge.ID)
		assert.Equal(t, stripe.RefundStatusSucceeded, refund.Status)
	})

	t.Run("partial refund sends the amount", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, "charge=ch_1&amount=500", string(body))

			writeJSON(t, w, http.StatusOK, `{"id": "re_2", "object": "refund", "amount": 500}`)
		})

		refund, err := client.Refunds().Create(context.Background(), &stripe.RefundCreateParams{
			Charge: "ch_1",
			Amount: stripe.Int64(500),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(500), refund.Amount)
	})

	t.Run("402 maps to request failed", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusPaymentRequired, `{
				"error": {"type": "card_error", "code": "charge_already_refunded", "message": "Charge ch_1 has already been refunded."}
			}`)
		})

		_, err := client.Refunds().Create(context.Background(), &stripe.RefundCreateParams{Charge: "ch_1"})
		require.Error(t, err)
		assert.True(t, stripe.IsRequestFailed(err))
	})
}

func TestRefundsRetrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds/re_1", r.URL.Path)

		writeJSON(t, w, http.StatusOK, `{"id": "re_1", "object": "refund", "reason": null}`)
	})

	refund, err := client.Refunds().Retrieve(context.Background(), "re_1", nil)
	require.NoError(t, err)
	assert.True(t, refund.Reason.Null())
}

func TestRefundsListAll(t *testing.T) {
	var cursors []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds", r.URL.Path)
		cursors = append(cursors, r.URL.Query().Get("starting_after"))

		if r.URL.Query().Get("starting_after") == "" {
			writeJSON(t, w, http.StatusOK, `{
				"object": "list",
				"data": [{"id": "re_1", "object": "refund"}],
				"has_more": true
			}`)

			return
		}

		writeJSON(t, w, http.StatusOK, `{
			"object": "list",
			"data": [{"id": "re_2", "object": "refund"}],
			"has_more": false
		}`)
	})

	refunds, err := client.Refunds().ListAll(context.Background(), nil).All()
	require.NoError(t, err)

	require.Len(t, refunds, 2)
	assert.Equal(t, []string{"", "re_1"}, cursors)
}
