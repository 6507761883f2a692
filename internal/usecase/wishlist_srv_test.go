package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/pkg/apperr"
)

func TestWishlistAddItem(t *testing.T) {
	wishlist := newFakeWishlistRepo()
	svc := NewWishlistService(wishlist, zap.NewNop())

	item, err := svc.AddItem(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, int64(7), item.ProductID)
	assert.Len(t, wishlist.items, 1)
}

func TestWishlistDuplicateAdd(t *testing.T) {
	wishlist := newFakeWishlistRepo()
	svc := NewWishlistService(wishlist, zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 7)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, 1, 7)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "Item already exists in the wishlist", apperr.MessageOf(err))
	assert.Len(t, wishlist.items, 1)
}

func TestWishlistSamePairDifferentUsers(t *testing.T) {
	svc := NewWishlistService(newFakeWishlistRepo(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 7)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 2, 7)
	require.NoError(t, err)

	mine, err := svc.ListItems(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestWishlistRemoveIsIdempotent(t *testing.T) {
	wishlist := newFakeWishlistRepo()
	svc := NewWishlistService(wishlist, zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 7)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, 1, 7))
	require.NoError(t, svc.RemoveItem(ctx, 1, 7))
	assert.Empty(t, wishlist.items)

	// Removing re-opens the slot for a fresh add.
	_, err = svc.AddItem(ctx, 1, 7)
	require.NoError(t, err)
}
