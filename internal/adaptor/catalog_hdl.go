package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

// uploads above this size are rejected before reading the body fully
const maxUploadBytes = 10 << 20

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// CreateItem handles POST /api/items
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields", validationErrors)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create item")
		return
	}

	utils.ResponseCreated(w, "Item added successfully", item)
}

// GetItem handles GET /api/items/{id}
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Valid item ID is required", nil)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, h.log, err, "get item")
		return
	}

	utils.ResponseSuccess(w, "Item fetched", item)
}

// ListItems handles GET /api/items?page=&per_page=
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), utils.DefaultPerPage)

	list, err := h.service.ListItems(r.Context(), page, perPage)
	if err != nil {
		writeServiceError(w, h.log, err, "list items")
		return
	}

	utils.ResponseSuccess(w, "Items fetched", list)
}

// UpdateQuantity handles PATCH /api/items/quantity
func (h *CatalogHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateItemQuantityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid product ID or quantity", validationErrors)
		return
	}

	item, err := h.service.UpdateItemQuantity(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update item quantity")
		return
	}

	utils.ResponseSuccess(w, "Quantity updated successfully", item)
}

// DeleteItem handles DELETE /api/items
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	var req request.DeleteItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Item ID and image URL are required", validationErrors)
		return
	}

	if err := h.service.DeleteItem(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "delete item")
		return
	}

	utils.ResponseSuccess(w, "Item deleted successfully", nil)
}

// UploadImage handles POST /api/items/upload?filename=
// The raw request body is the file content.
func (h *CatalogHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		utils.ResponseBadRequest(w, "Filename is required", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read file data", nil)
		return
	}
	if len(data) > maxUploadBytes {
		utils.ResponseBadRequest(w, "File is too large", nil)
		return
	}

	result, err := h.service.UploadImage(r.Context(), filename, data, r.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(w, h.log, err, "upload image")
		return
	}

	utils.ResponseCreated(w, "File uploaded", result)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories fetched", categories)
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Category name is required", validationErrors)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category added", category)
}
