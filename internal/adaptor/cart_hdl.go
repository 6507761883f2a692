package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.AddCartItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input data", validationErrors)
		return
	}

	line, err := h.service.AddItem(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, h.log, err, "add cart item")
		return
	}

	utils.ResponseCreated(w, "Item added to cart successfully", line)
}

// UpdateQuantity handles PATCH /api/cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCartQuantityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input data", validationErrors)
		return
	}

	line, err := h.service.UpdateQuantity(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, h.log, err, "update cart quantity")
		return
	}

	utils.ResponseSuccess(w, "Quantity updated successfully", line)
}

// RemoveItem handles DELETE /api/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req request.RemoveCartItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input data", validationErrors)
		return
	}

	if err := h.service.RemoveItem(r.Context(), req.UserID, req.ProductID); err != nil {
		writeServiceError(w, h.log, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "Item removed from cart", nil)
}

// ListItems handles GET /api/cart/items?userId=
func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.ParseID(r.URL.Query().Get("userId"))
	if !ok {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	lines, err := h.service.ListItems(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "list cart items")
		return
	}

	if len(lines) == 0 {
		utils.ResponseSuccess(w, "Cart is empty", lines)
		return
	}

	utils.ResponseSuccess(w, "Cart items fetched", lines)
}

// ClearCart handles DELETE /api/cart?userId=
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.ParseID(r.URL.Query().Get("userId"))
	if !ok {
		utils.ResponseBadRequest(w, "Missing userId in query parameters", nil)
		return
	}

	if err := h.service.ClearCart(r.Context(), userID); err != nil {
		writeServiceError(w, h.log, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cleared successfully", nil)
}
