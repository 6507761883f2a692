package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// PlaceOrders handles POST /api/orders
func (h *OrderHandler) PlaceOrders(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceOrdersRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "No orders to place.", validationErrors)
		return
	}

	orders, err := h.service.PlaceOrders(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "place orders")
		return
	}

	utils.ResponseCreated(w, "Orders placed successfully", orders)
}

// UpdateStatus handles PUT /api/orders/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOrderStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Order ID and status are required", validationErrors)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", order)
}

// ListCustomerOrders handles GET /api/orders/customer?customerId=
func (h *OrderHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.ParseID(r.URL.Query().Get("customerId"))
	if !ok {
		utils.ResponseBadRequest(w, "Valid Customer ID is required", nil)
		return
	}

	orders, err := h.service.ListCustomerOrders(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, h.log, err, "list customer orders")
		return
	}

	if len(orders) == 0 {
		utils.ResponseSuccess(w, "No orders found", orders)
		return
	}

	utils.ResponseSuccess(w, "Orders fetched", orders)
}

// ListVendorOrders handles GET /api/orders/vendor?vendorId=
func (h *OrderHandler) ListVendorOrders(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := utils.ParseID(r.URL.Query().Get("vendorId"))
	if !ok {
		utils.ResponseBadRequest(w, "Valid Vendor ID is required", nil)
		return
	}

	orders, err := h.service.ListVendorOrders(r.Context(), vendorID)
	if err != nil {
		writeServiceError(w, h.log, err, "list vendor orders")
		return
	}

	if len(orders) == 0 {
		utils.ResponseSuccess(w, "No orders found", orders)
		return
	}

	utils.ResponseSuccess(w, "Orders fetched", orders)
}
