package usecase

import (
	"context"
	"net/url"
	"path"

	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/apperr"
	"storefront/pkg/storage"
	"storefront/pkg/utils"
)

type CatalogService interface {
	CreateItem(ctx context.Context, req *request.CreateItemRequest) (*response.ItemResponse, error)
	GetItem(ctx context.Context, itemID int64) (*response.ItemResponse, error)
	ListItems(ctx context.Context, page, perPage int) (*response.ItemListResponse, error)
	UpdateItemQuantity(ctx context.Context, req *request.UpdateItemQuantityRequest) (*response.ItemResponse, error)
	DeleteItem(ctx context.Context, req *request.DeleteItemRequest) error
	UploadImage(ctx context.Context, filename string, data []byte, contentType string) (*response.UploadResponse, error)
	ListCategories(ctx context.Context) ([]*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
}

type catalogService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	blobs      storage.BlobStore
	log        *zap.Logger
}

func NewCatalogService(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	blobs storage.BlobStore,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		items:      items,
		categories: categories,
		blobs:      blobs,
		log:        log,
	}
}

func (s *catalogService) CreateItem(ctx context.Context, req *request.CreateItemRequest) (*response.ItemResponse, error) {
	if req.Name == "" || req.Category == "" || req.Price <= 0 || req.Quantity <= 0 ||
		req.ImageURL == "" || req.VendorID <= 0 {
		return nil, apperr.New(apperr.Validation, "Missing required fields")
	}

	item := &entity.Item{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		VendorID:    req.VendorID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		s.log.Error("Failed to create item", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}

	s.log.Info("Item created",
		zap.Int64("item_id", item.ItemID),
		zap.Int64("vendor_id", item.VendorID),
	)

	return response.ItemToResponse(item), nil
}

func (s *catalogService) GetItem(ctx context.Context, itemID int64) (*response.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to get item", zap.Error(err), zap.Int64("item_id", itemID))
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}
	if item == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}

	return response.ItemToResponse(item), nil
}

func (s *catalogService) ListItems(ctx context.Context, page, perPage int) (*response.ItemListResponse, error) {
	perPage = utils.NormalizePerPage(perPage)
	offset := utils.CalculateOffset(page, perPage)

	items, err := s.items.FindAll(ctx, perPage, offset)
	if err != nil {
		s.log.Error("Failed to list items", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}

	total, err := s.items.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count items", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}

	return &response.ItemListResponse{
		Items:      response.ItemsToResponse(items),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: utils.CalculateTotalPages(total, perPage),
	}, nil
}

func (s *catalogService) UpdateItemQuantity(ctx context.Context, req *request.UpdateItemQuantityRequest) (*response.ItemResponse, error) {
	if req.Quantity < 0 {
		return nil, apperr.New(apperr.Validation, "Quantity cannot be negative")
	}

	item, err := s.items.UpdateQuantity(ctx, req.ProductID, req.Quantity)
	if err != nil {
		s.log.Error("Failed to update item quantity",
			zap.Error(err),
			zap.Int64("item_id", req.ProductID),
		)
		return nil, apperr.Wrap(apperr.Store, "Update failed", err)
	}
	if item == nil {
		return nil, apperr.New(apperr.NotFound, "Product not found")
	}

	return response.ItemToResponse(item), nil
}

// DeleteItem removes the image blob first, then the row. A missing row is
// NotFound; a blob deletion failure is logged but does not block the row
// deletion, so a half-deleted image cannot strand the listing.
func (s *catalogService) DeleteItem(ctx context.Context, req *request.DeleteItemRequest) error {
	if imagePath := extractBlobPath(req.ImageURL); imagePath != "" {
		if err := s.blobs.Delete(ctx, imagePath); err != nil {
			s.log.Warn("Failed to delete item image",
				zap.Error(err),
				zap.String("path", imagePath),
			)
		}
	}

	deleted, err := s.items.Delete(ctx, req.ItemID)
	if err != nil {
		s.log.Error("Failed to delete item", zap.Error(err), zap.Int64("item_id", req.ItemID))
		return apperr.Wrap(apperr.Store, "Deletion failed", err)
	}
	if !deleted {
		return apperr.New(apperr.NotFound, "Item not found")
	}

	s.log.Info("Item deleted", zap.Int64("item_id", req.ItemID))
	return nil
}

func (s *catalogService) UploadImage(ctx context.Context, filename string, data []byte, contentType string) (*response.UploadResponse, error) {
	if filename == "" {
		return nil, apperr.New(apperr.Validation, "Filename is required")
	}
	if len(data) == 0 {
		return nil, apperr.New(apperr.Validation, "File data is missing")
	}

	// Flatten the key so a crafted filename cannot escape the bucket prefix.
	key := "items/" + path.Base(filename)

	blobURL, err := s.blobs.Put(ctx, key, data, contentType)
	if err != nil {
		s.log.Error("Failed to upload image", zap.Error(err), zap.String("key", key))
		return nil, apperr.Wrap(apperr.Store, "Upload failed", err)
	}

	return &response.UploadResponse{URL: blobURL}, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*response.CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Failed to fetch categories", err)
	}

	return response.CategoriesToResponse(categories), nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if req.Name == "" {
		return nil, apperr.New(apperr.Validation, "Category name is required")
	}

	category := &entity.Category{Name: req.Name}
	if err := s.categories.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err))
		return nil, apperr.Wrap(apperr.Store, "Failed to add category", err)
	}

	return &response.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// extractBlobPath pulls the object path out of a stored image URL.
func extractBlobPath(imageURL string) string {
	if imageURL == "" {
		return ""
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return ""
	}

	return u.Path
}
