package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/pkg/apperr"
	"storefront/pkg/utils"
)

func newCatalogFixture() (CatalogService, *fakeItemRepo, *fakeCategoryRepo, *fakeBlobStore) {
	items := newFakeItemRepo()
	categories := newFakeCategoryRepo()
	blobs := newFakeBlobStore()
	svc := NewCatalogService(items, categories, blobs, zap.NewNop())
	return svc, items, categories, blobs
}

func createItemRequest() *request.CreateItemRequest {
	return &request.CreateItemRequest{
		Name:     "Linen Shirt",
		Category: "clothing",
		Price:    49.99,
		Quantity: 10,
		ImageURL: "https://blobs.test/items/shirt.png",
		VendorID: 3,
	}
}

func TestCreateItem(t *testing.T) {
	svc, items, _, _ := newCatalogFixture()

	created, err := svc.CreateItem(context.Background(), createItemRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ItemID)
	assert.Equal(t, "Linen Shirt", created.Name)
	assert.Equal(t, int64(3), created.VendorID)
	assert.Equal(t, 1, items.writes)
}

func TestCreateItemMissingFields(t *testing.T) {
	svc, items, _, _ := newCatalogFixture()

	cases := []func(*request.CreateItemRequest){
		func(r *request.CreateItemRequest) { r.Name = "" },
		func(r *request.CreateItemRequest) { r.Category = "" },
		func(r *request.CreateItemRequest) { r.Price = 0 },
		func(r *request.CreateItemRequest) { r.Quantity = 0 },
		func(r *request.CreateItemRequest) { r.ImageURL = "" },
		func(r *request.CreateItemRequest) { r.VendorID = 0 },
	}
	for _, blank := range cases {
		req := createItemRequest()
		blank(req)
		_, err := svc.CreateItem(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
		assert.Equal(t, "Missing required fields", apperr.MessageOf(err))
	}
	assert.Zero(t, items.writes, "rejected items must not touch the store")
}

func TestGetItem(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, createItemRequest())
	require.NoError(t, err)

	got, err := svc.GetItem(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, created.ItemID, got.ItemID)
	assert.Equal(t, "Linen Shirt", got.Name)
}

func TestGetItemUnknownID(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()

	_, err := svc.GetItem(context.Background(), 4040)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Product not found", apperr.MessageOf(err))
}

func TestListItemsPagination(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateItem(ctx, createItemRequest())
		require.NoError(t, err)
	}

	page, err := svc.ListItems(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last, err := svc.ListItems(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
}

func TestListItemsClampsPerPage(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()

	page, err := svc.ListItems(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultPerPage, page.PerPage)

	page, err = svc.ListItems(context.Background(), 1, 10_000)
	require.NoError(t, err)
	assert.Equal(t, utils.MaxPerPage, page.PerPage)
}

func TestUpdateItemQuantity(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, createItemRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateItemQuantity(ctx, &request.UpdateItemQuantityRequest{
		ProductID: created.ItemID,
		Quantity:  0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity, "zero marks the item sold out")
}

func TestUpdateItemQuantityNegative(t *testing.T) {
	svc, items, _, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, createItemRequest())
	require.NoError(t, err)

	_, err = svc.UpdateItemQuantity(ctx, &request.UpdateItemQuantityRequest{
		ProductID: created.ItemID,
		Quantity:  -1,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "Quantity cannot be negative", apperr.MessageOf(err))

	assert.Equal(t, 10, items.items[created.ItemID].Quantity, "rejected update must not mutate")
}

func TestUpdateItemQuantityUnknownID(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()

	_, err := svc.UpdateItemQuantity(context.Background(), &request.UpdateItemQuantityRequest{
		ProductID: 4040,
		Quantity:  3,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestDeleteItem(t *testing.T) {
	svc, items, _, blobs := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, createItemRequest())
	require.NoError(t, err)

	err = svc.DeleteItem(ctx, &request.DeleteItemRequest{
		ItemID:   created.ItemID,
		ImageURL: "https://blobs.test/items/shirt.png",
	})
	require.NoError(t, err)

	assert.Empty(t, items.items)
	require.Len(t, blobs.deletes, 1)
	assert.Equal(t, "/items/shirt.png", blobs.deletes[0], "blob path comes from the stored URL")
}

func TestDeleteItemUnknownID(t *testing.T) {
	svc, _, _, _ := newCatalogFixture()

	err := svc.DeleteItem(context.Background(), &request.DeleteItemRequest{
		ItemID:   4040,
		ImageURL: "https://blobs.test/items/gone.png",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Item not found", apperr.MessageOf(err))
}

func TestDeleteItemBlobFailureStillDeletesRow(t *testing.T) {
	svc, items, _, blobs := newCatalogFixture()
	blobs.failDelete = true
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, createItemRequest())
	require.NoError(t, err)

	err = svc.DeleteItem(ctx, &request.DeleteItemRequest{
		ItemID:   created.ItemID,
		ImageURL: "https://blobs.test/items/shirt.png",
	})
	require.NoError(t, err, "a stuck blob must not strand the listing")
	assert.Empty(t, items.items)
	assert.Len(t, blobs.deletes, 1)
}

func TestUploadImage(t *testing.T) {
	svc, _, _, blobs := newCatalogFixture()

	resp, err := svc.UploadImage(context.Background(), "shirt.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.test/items/shirt.png", resp.URL)
	require.Len(t, blobs.puts, 1)
	assert.Equal(t, "items/shirt.png", blobs.puts[0])
}

func TestUploadImageFlattensFilename(t *testing.T) {
	svc, _, _, blobs := newCatalogFixture()

	_, err := svc.UploadImage(context.Background(), "../../etc/passwd", []byte("x"), "image/png")
	require.NoError(t, err)
	require.Len(t, blobs.puts, 1)
	assert.Equal(t, "items/passwd", blobs.puts[0], "crafted filenames stay under the prefix")
}

func TestUploadImageMissingInput(t *testing.T) {
	svc, _, _, blobs := newCatalogFixture()

	_, err := svc.UploadImage(context.Background(), "", []byte("x"), "image/png")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.UploadImage(context.Background(), "shirt.png", nil, "image/png")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	assert.Empty(t, blobs.puts)
}

func TestCreateCategory(t *testing.T) {
	svc, _, categories, _ := newCatalogFixture()
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, &request.CreateCategoryRequest{Name: "clothing"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "clothing", created.Name)
	assert.Len(t, categories.categories, 1)

	listed, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "clothing", listed[0].Name)
}

func TestCreateCategoryEmptyName(t *testing.T) {
	svc, _, categories, _ := newCatalogFixture()

	_, err := svc.CreateCategory(context.Background(), &request.CreateCategoryRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Empty(t, categories.categories)
}
