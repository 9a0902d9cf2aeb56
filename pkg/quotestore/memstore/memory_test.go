package memstore_test

import (
	"context"
	"testing"

	"github.com/quotecms/quotetag/pkg/errors"
	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/quotestore/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert_assigns_id_and_timestamps", func(t *testing.T) {
		store := memstore.New()
		defer func() { _ = store.Close() }()

		q := quotes.New("", "gold is money")
		require.NoError(t, store.UpsertQuote(ctx, q))
		assert.NotEmpty(t, q.ID)
		assert.False(t, q.CreatedAt.IsZero())

		got, err := store.GetQuote(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "gold is money", got.Text)
	})

	t.Run("get_missing_is_not_found", func(t *testing.T) {
		store := memstore.New()
		_, err := store.GetQuote(ctx, "nope")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("returned_quotes_are_copies", func(t *testing.T) {
		store := memstore.New()
		q := quotes.New("q1", "gold")
		q.AutoTags = quotes.NewTagSet("gold")
		require.NoError(t, store.UpsertQuote(ctx, q))

		got, err := store.GetQuote(ctx, "q1")
		require.NoError(t, err)
		got.AutoTags.Add("tampered")

		again, err := store.GetQuote(ctx, "q1")
		require.NoError(t, err)
		assert.False(t, again.AutoTags.Has("tampered"))
	})

	t.Run("set_auto_tags", func(t *testing.T) {
		store := memstore.New()
		require.NoError(t, store.UpsertQuote(ctx, quotes.New("q1", "gold")))

		require.NoError(t, store.SetAutoTags(ctx, "q1", quotes.NewTagSet("gold", "metals")))
		got, err := store.GetQuote(ctx, "q1")
		require.NoError(t, err)
		assert.Equal(t, []string{"gold", "metals"}, got.AutoTags.Sorted())

		err = store.SetAutoTags(ctx, "missing", quotes.NewTagSet("x"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("remove_auto_tag_records_exclusion", func(t *testing.T) {
		store := memstore.New()
		q := quotes.New("q1", "gold")
		q.AutoTags = quotes.NewTagSet("gold", "metals")
		require.NoError(t, store.UpsertQuote(ctx, q))

		require.NoError(t, store.RemoveAutoTag(ctx, "q1", "gold"))

		got, err := store.GetQuote(ctx, "q1")
		require.NoError(t, err)
		assert.Equal(t, []string{"metals"}, got.AutoTags.Sorted())
		assert.True(t, got.RemovedAutoTags.Has("gold"))
	})

	t.Run("list_and_count", func(t *testing.T) {
		store := memstore.New()
		for _, id := range []string{"a", "b", "c"} {
			require.NoError(t, store.UpsertQuote(ctx, quotes.New(id, "text "+id)))
		}

		all, err := store.ListQuotes(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}
