package stripe

import "context"

// ListFetcher fetches one batch from a cursor-paginated list endpoint.
// startingAfter is empty for the first batch and the id of the last seen
// element afterwards.
type ListFetcher[T Identifiable] func(ctx context.Context, startingAfter string) (*ListEnvelope[T], error)

// Iterator is a lazy, forward-only stream over a list endpoint. It is
// single-pass and assumes sole ownership; restart iteration by building a
// new iterator from the same parameters.
type Iterator[T Identifiable] struct {
	ctx    context.Context
	fetch  ListFetcher[T]
	logger Logger

	cursor  string
	buffer  []T
	index   int
	hasMore bool
	started bool
	err     error
}

// NewIterator builds an iterator over a list endpoint. startingAfter seeds
// the cursor, usually from the caller's ListParams. logger may be nil.
func NewIterator[T Identifiable](ctx context.Context, fetch ListFetcher[T], startingAfter string, logger Logger) *Iterator[T] {
	return &Iterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		logger:  logger,
		cursor:  startingAfter,
		hasMore: true,
	}
}

// HasNext reports whether another item is available, fetching the next
// batch when the buffer is exhausted. After a fetch error it returns true
// once so that Next can surface the error.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.index < len(it.buffer) {
		return true
	}

	if it.started && !it.hasMore {
		return false
	}

	it.fetchBatch()

	return it.err != nil || it.index < len(it.buffer)
}

// Next returns the next item. It returns ErrNoMoreItems once the stream is
// exhausted, or the typed fetch error, which also ends the sequence.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		err := it.err
		it.err = nil
		it.hasMore = false
		it.buffer = nil
		it.index = 0

		return zero, err
	}

	if it.index >= len(it.buffer) {
		if it.started && !it.hasMore {
			return zero, ErrNoMoreItems
		}

		it.fetchBatch()

		if it.err != nil {
			return it.Next()
		}

		if it.index >= len(it.buffer) {
			return zero, ErrNoMoreItems
		}
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator into a slice.
func (it *Iterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping on the first error.
func (it *Iterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *Iterator[T]) fetchBatch() {
	it.started = true
	it.buffer = nil
	it.index = 0

	envelope, err := it.fetch(it.ctx, it.cursor)
	if err != nil {
		it.err = err
		it.hasMore = false

		return
	}

	it.buffer = envelope.Data
	it.hasMore = envelope.HasMore

	if len(envelope.Data) == 0 {
		// A pathological server can claim has_more with an empty page;
		// terminate instead of looping forever.
		if envelope.HasMore {
			if it.logger != nil {
				it.logger.Warn("list page empty but has_more set, ending pagination", map[string]interface{}{
					"cursor": it.cursor,
				})
			}

			it.hasMore = false
		}

		return
	}

	it.cursor = envelope.Data[len(envelope.Data)-1].ObjectID()
}

// SearchFetcher fetches one batch from a search endpoint. page is empty for
// the first batch and the previous response's next_page token afterwards.
type SearchFetcher[T any] func(ctx context.Context, page string) (*SearchEnvelope[T], error)

// SearchIterator is the search-endpoint variant of Iterator. The cursor is
// the opaque next_page token rather than an element id.
type SearchIterator[T any] struct {
	ctx   context.Context
	fetch SearchFetcher[T]

	page    string
	buffer  []T
	index   int
	hasMore bool
	started bool
	err     error
}

// NewSearchIterator builds an iterator over a search endpoint. page seeds
// the cursor, usually empty.
func NewSearchIterator[T any](ctx context.Context, fetch SearchFetcher[T], page string) *SearchIterator[T] {
	return &SearchIterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		page:    page,
		hasMore: true,
	}
}

// HasNext reports whether another item is available, fetching the next
// batch when needed.
func (it *SearchIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.index < len(it.buffer) {
		return true
	}

	if it.started && !it.hasMore {
		return false
	}

	it.fetchBatch()

	return it.err != nil || it.index < len(it.buffer)
}

// Next returns the next item, ErrNoMoreItems at end of stream, or the
// typed fetch error.
func (it *SearchIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		err := it.err
		it.err = nil
		it.hasMore = false
		it.buffer = nil
		it.index = 0

		return zero, err
	}

	if it.index >= len(it.buffer) {
		if it.started && !it.hasMore {
			return zero, ErrNoMoreItems
		}

		it.fetchBatch()

		if it.err != nil {
			return it.Next()
		}

		if it.index >= len(it.buffer) {
			return zero, ErrNoMoreItems
		}
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator into a slice.
func (it *SearchIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

func (it *SearchIterator[T]) fetchBatch() {
	it.started = true
	it.buffer = nil
	it.index = 0

	envelope, err := it.fetch(it.ctx, it.page)
	if err != nil {
		it.err = err
		it.hasMore = false

		return
	}

	it.buffer = envelope.Data

	next := ""
	if envelope.NextPage.Valid {
		next = envelope.NextPage.Value
	}

	if next == "" {
		it.hasMore = false

		return
	}

	it.page = next
	it.hasMore = true
}
