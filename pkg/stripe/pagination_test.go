package stripe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgeline-io/stripe-client/pkg/stripe"
)

func chargePage(hasMore bool, ids ...string) *stripe.ListEnvelope[stripe.Charge] {
	page := &stripe.ListEnvelope[stripe.Charge]{
		Object:  "list",
		Data:    []stripe.Charge{},
		HasMore: hasMore,
	}

	for _, id := range ids {
		charge := stripe.Charge{}
		charge.ID = id
		page.Data = append(page.Data, charge)
	}

	return page
}

func TestIterator(t *testing.T) {
	t.Run("walks pages using the last element id as cursor", func(t *testing.T) {
		var cursors []string

		fetch := func(_ context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Charge], error) {
			cursors = append(cursors, startingAfter)

			switch startingAfter {
			case "":
				return chargePage(true, "ch_a", "ch_b"), nil
			case "ch_b":
				return chargePage(false, "ch_c"), nil
			default:
				t.Fatalf("unexpected cursor %q", startingAfter)

				return nil, nil
			}
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		var ids []string

		for it.HasNext() {
			charge, err := it.Next()
			require.NoError(t, err)

			ids = append(ids, charge.ID)
		}

		assert.Equal(t, []string{"ch_a", "ch_b", "ch_c"}, ids)
		assert.Equal(t, []string{"", "ch_b"}, cursors)
	})

	t.Run("seeds the cursor from starting_after", func(t *testing.T) {
		fetch := func(_ context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Charge], error) {
			assert.Equal(t, "ch_seed", startingAfter)

			return chargePage(false, "ch_x"), nil
		}

		it := stripe.NewIterator(context.Background(), fetch, "ch_seed", nil)

		charge, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, "ch_x", charge.ID)
	})

	t.Run("returns ErrNoMoreItems after exhaustion", func(t *testing.T) {
		fetch := func(_ context.Context, _ string) (*stripe.ListEnvelope[stripe.Charge], error) {
			return chargePage(false, "ch_only"), nil
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		_, err := it.Next()
		require.NoError(t, err)

		_, err = it.Next()
		assert.ErrorIs(t, err, stripe.ErrNoMoreItems)
		assert.False(t, it.HasNext())
	})

	t.Run("surfaces a fetch error once and ends the stream", func(t *testing.T) {
		fetchErr := &stripe.Error{Kind: stripe.ErrorKindRateLimited, StatusCode: 429}
		calls := 0

		fetch := func(_ context.Context, _ string) (*stripe.ListEnvelope[stripe.Charge], error) {
			calls++

			return nil, fetchErr
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		require.True(t, it.HasNext())

		_, err := it.Next()
		assert.True(t, stripe.IsRateLimited(err))

		_, err = it.Next()
		assert.ErrorIs(t, err, stripe.ErrNoMoreItems)
		assert.Equal(t, 1, calls, "failed fetch must not be retried by the iterator")
	})

	t.Run("terminates on an empty page claiming has_more", func(t *testing.T) {
		calls := 0

		fetch := func(_ context.Context, _ string) (*stripe.ListEnvelope[stripe.Charge], error) {
			calls++

			return chargePage(true), nil
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		assert.False(t, it.HasNext())
		assert.Equal(t, 1, calls)
	})

	t.Run("All drains the stream", func(t *testing.T) {
		fetch := func(_ context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Charge], error) {
			if startingAfter == "" {
				return chargePage(true, "ch_1", "ch_2"), nil
			}

			return chargePage(false, "ch_3"), nil
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		charges, err := it.All()
		require.NoError(t, err)
		require.Len(t, charges, 3)
		assert.Equal(t, "ch_3", charges[2].ID)
	})

	t.Run("All returns collected items alongside the error", func(t *testing.T) {
		fetchErr := errors.New("boom")

		fetch := func(_ context.Context, startingAfter string) (*stripe.ListEnvelope[stripe.Charge], error) {
			if startingAfter == "" {
				return chargePage(true, "ch_1"), nil
			}

			return nil, fetchErr
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		charges, err := it.All()
		assert.ErrorIs(t, err, fetchErr)
		assert.Len(t, charges, 1)
	})

	t.Run("ForEach stops on callback error", func(t *testing.T) {
		fetch := func(_ context.Context, _ string) (*stripe.ListEnvelope[stripe.Charge], error) {
			return chargePage(false, "ch_1", "ch_2", "ch_3"), nil
		}

		it := stripe.NewIterator(context.Background(), fetch, "", nil)

		stop := errors.New("stop")
		seen := 0

		err := it.ForEach(func(_ stripe.Charge) error {
			seen++
			if seen == 2 {
				return stop
			}

			return nil
		})

		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 2, seen)
	})
}

func TestSearchIterator(t *testing.T) {
	t.Run("walks pages using the next_page token", func(t *testing.T) {
		var pages []string

		fetch := func(_ context.Context, page string) (*stripe.SearchEnvelope[stripe.Charge], error) {
			pages = append(pages, page)

			switch page {
			case "":
				envelope := &stripe.SearchEnvelope[stripe.Charge]{
					Data:     chargePage(false, "ch_a", "ch_b").Data,
					HasMore:  true,
					NextPage: stripe.NullableOf("page_2"),
				}

				return envelope, nil
			case "page_2":
				return &stripe.SearchEnvelope[stripe.Charge]{
					Data: chargePage(false, "ch_c").Data,
				}, nil
			default:
				t.Fatalf("unexpected page token %q", page)

				return nil, nil
			}
		}

		it := stripe.NewSearchIterator(context.Background(), fetch, "")

		charges, err := it.All()
		require.NoError(t, err)
		require.Len(t, charges, 3)
		assert.Equal(t, []string{"", "page_2"}, pages)
	})

	t.Run("stops when next_page is null", func(t *testing.T) {
		calls := 0

		fetch := func(_ context.Context, _ string) (*stripe.SearchEnvelope[stripe.Charge], error) {
			calls++

			envelope := &stripe.SearchEnvelope[stripe.Charge]{
				Data: chargePage(false, "ch_1").Data,
			}
			envelope.NextPage.Set = true

			return envelope, nil
		}

		it := stripe.NewSearchIterator(context.Background(), fetch, "")

		charges, err := it.All()
		require.NoError(t, err)
		assert.Len(t, charges, 1)
		assert.Equal(t, 1, calls)
	})

	t.Run("surfaces a fetch error once", func(t *testing.T) {
		fetchErr := errors.New("search failed")

		fetch := func(_ context.Context, _ string) (*stripe.SearchEnvelope[stripe.Charge], error) {
			return nil, fetchErr
		}

		it := stripe.NewSearchIterator(context.Background(), fetch, "")

		require.True(t, it.HasNext())

		_, err := it.Next()
		assert.ErrorIs(t, err, fetchErr)

		_, err = it.Next()
		assert.ErrorIs(t, err, stripe.ErrNoMoreItems)
	})
}
