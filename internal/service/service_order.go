package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

type orderService struct {
	menuRepository  store.MenuRepository
	orderRepository store.OrderRepository
	logger          *logger.Logger
}

func NewOrderService(menuRepository store.MenuRepository, orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		menuRepository:  menuRepository,
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// PlaceOrder prices the requested menu item and stores an order for
// customerID with status Processing. The total is price times quantity.
//
// Returns ErrMenuNotFound for an unknown menu and ErrCustomerNoLongerExists
// when customerID no longer references a customer.
func (s *orderService) PlaceOrder(ctx context.Context, customerID int64, request models.OrderRequest) (models.Order, error) {
	log := logger.FromContext(ctx)

	menu, err := s.menuRepository.FindMenuByID(ctx, request.MenuID)
	if errors.Is(err, store.ErrMenuNotFound) {
		return models.Order{}, ErrMenuNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("menu lookup ended with error: %w", err)
	}

	order, err := s.orderRepository.CreateOrder(ctx, models.Order{
		RestaurantID: menu.RestaurantID,
		MenuID:       menu.ID,
		Quantity:     request.Quantity,
		Price:        menu.Price,
		Total:        menu.Price * float64(request.Quantity),
		Status:       models.OrderStatusProcessing,
		CustomerID:   customerID,
	})
	if errors.Is(err, store.ErrInvalidOrderReference) {
		// the menu was found above, so the customer from the token is gone
		log.Warn().Int64("customer_id", customerID).Msg("order for a customer that no longer exists")
		return models.Order{}, ErrCustomerNoLongerExists
	}
	if err != nil {
		log.Err(err).Int64("customer_id", customerID).Int64("menu_id", request.MenuID).Msg("order creation ended with error")
		return models.Order{}, fmt.Errorf("order creation ended with error: %w", err)
	}

	log.Info().Int64("order_id", order.ID).Int64("customer_id", customerID).Float64("total", order.Total).Msg("order placed")
	return order, nil
}

func (s *orderService) GetOrderSummary(ctx context.Context, customerID int64) (models.OrderSummary, error) {
	summary, err := s.orderRepository.GetOrderSummary(ctx, customerID)
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("order summary ended with error: %w", err)
	}

	return summary, nil
}
