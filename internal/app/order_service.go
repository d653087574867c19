package app

import (
	"context"

	"github.com/onu24/learnsphere-v1/internal/clock"
	"github.com/onu24/learnsphere-v1/internal/domain"
)

// OrderRepository is the storage contract for the order ledger.
type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrderForUpdate(ctx context.Context, id string) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Stats(ctx context.Context) (Stats, error)
}

// Stats backs the back-office dashboard cards.
type Stats struct {
	TotalRevenue    float64
	TotalOrders     int
	PendingOrders   int
	ConfirmedOrders int
	TotalUsers      int
	TotalCourses    int
}

// OrderService exposes the ledger to the admin back-office.
type OrderService struct {
	repo     OrderRepository
	enroller CourseEnroller
	clock    clock.Clock
}

func NewOrderService(repo OrderRepository, enroller CourseEnroller, clk clock.Clock) *OrderService {
	return &OrderService{
		repo:     repo,
		enroller: enroller,
		clock:    clk,
	}
}

// ListOrders returns all orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// ConfirmOrder moves a pending order to Confirmed and grants the buyer
// access to its courses. Confirming an already-Confirmed order is a no-op.
func (s *OrderService) ConfirmOrder(ctx context.Context, id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, domain.ErrInvalidID
	}

	now := s.clock.Now()
	var result domain.Order

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if order.Status == domain.OrderStatusConfirmed {
			result = order
			return nil
		}

		if err := s.repo.UpdateOrderStatus(txCtx, id, domain.OrderStatusConfirmed); err != nil {
			return err
		}
		if order.UserID != nil {
			if err := s.enroller.EnrollInCourses(txCtx, *order.UserID, order.Courses, now); err != nil {
				return err
			}
		}

		order.Status = domain.OrderStatusConfirmed
		result = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return result, nil
}

// Stats aggregates ledger, user and catalog counts for the dashboard.
func (s *OrderService) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
