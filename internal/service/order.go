package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

var (
	ErrOutOfStock    = errors.New("out of stock")
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid status value")
)

type OrderService struct {
	orders    OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{orders: orders, publisher: publisher, qrEncoder: qr}
}

// Place takes one unit of stock and records the order at the item's
// current price. The decrement and insert commit together, so two
// buyers racing for the last unit cannot both win.
func (s *OrderService) Place(ctx context.Context, userID, menuID int) (*domain.Order, error) {
	if userID <= 0 || menuID <= 0 {
		return nil, ErrMissingFields
	}

	order, ok, err := s.orders.PlaceOrder(userID, menuID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if !ok {
		return nil, ErrOutOfStock
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:       domain.EventOrderPlaced,
			OrderID:    order.ID,
			UserID:     order.UserID,
			MenuID:     order.MenuID,
			Status:     order.Status,
			TotalPrice: order.TotalPrice,
			Timestamp:  time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) ActiveOrders(userID int) ([]domain.OrderView, error) {
	return s.orders.ActiveOrders(userID)
}

func (s *OrderService) OrdersForUser(userID int) ([]domain.OrderView, error) {
	return s.orders.OrdersForUser(userID)
}

// UpdateStatus accepts any of the four statuses in any order; the
// kitchen flow is not enforced as a state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) error {
	if status == "" {
		return ErrMissingFields
	}
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}

	affected, err := s.orders.UpdateOrderStatus(orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventStatusChanged,
			OrderID:   orderID,
			Status:    status,
			Timestamp: time.Now(),
		})
	}
	return nil
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.orders.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
