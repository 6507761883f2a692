package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

type WishlistHandler struct {
	service usecase.WishlistService
	log     *zap.Logger
}

func NewWishlistHandler(service usecase.WishlistService, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log,
	}
}

// AddItem handles POST /api/wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.WishlistItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input data", validationErrors)
		return
	}

	item, err := h.service.AddItem(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		writeServiceError(w, h.log, err, "add wishlist item")
		return
	}

	utils.ResponseCreated(w, "Item added to wishlist", item)
}

// ListItems handles GET /api/wishlist/items?userId=
func (h *WishlistHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.ParseID(r.URL.Query().Get("userId"))
	if !ok {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	items, err := h.service.ListItems(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "list wishlist")
		return
	}

	utils.ResponseSuccess(w, "Wishlist fetched", items)
}

// RemoveItem handles DELETE /api/wishlist/items
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req request.WishlistItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input data", validationErrors)
		return
	}

	if err := h.service.RemoveItem(r.Context(), req.UserID, req.ProductID); err != nil {
		writeServiceError(w, h.log, err, "remove wishlist item")
		return
	}

	utils.ResponseSuccess(w, "Item removed from wishlist", nil)
}
