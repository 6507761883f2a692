package usecase

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/apperr"
)

type OrderService interface {
	PlaceOrders(ctx context.Context, req *request.PlaceOrdersRequest) ([]*response.OrderResponse, error)
	UpdateStatus(ctx context.Context, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	ListCustomerOrders(ctx context.Context, customerID int64) ([]*response.OrderDetailResponse, error)
	ListVendorOrders(ctx context.Context, vendorID int64) ([]*response.OrderDetailResponse, error)
}

type orderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	log    *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	users repository.UserRepository,
	log *zap.Logger,
) OrderService {
	return &orderService{
		orders: orders,
		users:  users,
		log:    log,
	}
}

// PlaceOrders bulk-inserts one order row per line. Every line carries its
// own customer/shipping snapshot taken at checkout; nothing is re-read
// from the user profile here.
func (s *orderService) PlaceOrders(ctx context.Context, req *request.PlaceOrdersRequest) ([]*response.OrderResponse, error) {
	if len(req.Orders) == 0 {
		return nil, apperr.New(apperr.Validation, "No orders to place")
	}

	lines := make([]*entity.Order, len(req.Orders))
	for i, line := range req.Orders {
		if line.Quantity <= 0 {
			return nil, apperr.New(apperr.Validation, "Order quantity must be positive")
		}
		lines[i] = &entity.Order{
			CustomerID:      line.CustomerID,
			VendorID:        line.VendorID,
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			ShippingAddress: line.ShippingAddress,
			CustomerName:    line.CustomerName,
			CustomerEmail:   line.CustomerEmail,
		}
	}

	created, err := s.orders.CreateBatch(ctx, lines)
	if err != nil {
		s.log.Error("Failed to place orders",
			zap.Error(err),
			zap.Int("lines", len(lines)),
		)
		return nil, apperr.Wrap(apperr.Store, "Failed to place orders. Please try again later.", err)
	}

	s.log.Info("Orders placed", zap.Int("count", len(created)))

	return response.OrdersToResponse(created), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	status := entity.OrderStatus(req.Status)
	if !status.Valid() {
		return nil, apperr.New(apperr.Validation, "Invalid status value")
	}

	updated, err := s.orders.UpdateStatus(ctx, req.OrderID, status)
	if err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", req.OrderID),
		)
		return nil, apperr.Wrap(apperr.Store, "Failed to update order status", err)
	}
	if updated == nil {
		return nil, apperr.New(apperr.NotFound, "Order not found")
	}

	s.log.Info("Order status updated",
		zap.Int64("order_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return response.OrderToResponse(updated), nil
}

func (s *orderService) ListCustomerOrders(ctx context.Context, customerID int64) ([]*response.OrderDetailResponse, error) {
	details, err := s.orders.FindByCustomer(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to list customer orders",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
		)
		return nil, apperr.Wrap(apperr.Store, "Failed to fetch user orders", err)
	}

	return response.OrderDetailsToResponse(details), nil
}

// ListVendorOrders requires the caller to exist and hold the vendor role.
func (s *orderService) ListVendorOrders(ctx context.Context, vendorID int64) ([]*response.OrderDetailResponse, error) {
	role, err := s.users.FindRoleByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to check vendor role",
			zap.Error(err),
			zap.Int64("vendor_id", vendorID),
		)
		return nil, apperr.Wrap(apperr.Store, "Failed to fetch vendor orders", err)
	}
	if role == "" {
		return nil, apperr.New(apperr.NotFound, "Vendor not found")
	}
	if role != entity.RoleVendor {
		return nil, apperr.New(apperr.Forbidden, "User is not authorized as a vendor")
	}

	details, err := s.orders.FindByVendor(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to list vendor orders",
			zap.Error(err),
			zap.Int64("vendor_id", vendorID),
		)
		return nil, apperr.Wrap(apperr.Store, "Failed to fetch vendor orders", err)
	}

	return response.OrderDetailsToResponse(details), nil
}
