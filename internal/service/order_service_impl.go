package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
)

type orderService struct {
	orders repository.OrderRepo
}

func NewOrderService(orders repository.OrderRepo) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) Create(ctx context.Context, o *domain.Order) error {
	if err := o.ValidateNumber(); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = domain.OrderOpen
	}
	return s.orders.Create(ctx, o)
}

func (s *orderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func (s *orderService) List(ctx context.Context, includeClosed bool) ([]*domain.Order, error) {
	return s.orders.List(ctx, includeClosed)
}

func (s *orderService) Update(ctx context.Context, o *domain.Order) error {
	o.UpdatedAt = time.Now().UTC()
	return s.orders.Update(ctx, o)
}

func (s *orderService) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	return s.orders.Update(ctx, o)
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func (s *orderService) AddItem(ctx context.Context, i *domain.OrderItem) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	if i.Quantity <= 0 {
		i.Quantity = 1
	}
	if i.Unit == "" {
		i.Unit = "pcs"
	}
	return s.orders.CreateItem(ctx, i)
}

func (s *orderService) GetItem(ctx context.Context, id string) (*domain.OrderItem, error) {
	return s.orders.GetItem(ctx, id)
}

func (s *orderService) ListItems(ctx context.Context, orderID string) ([]*domain.OrderItem, error) {
	return s.orders.ListItems(ctx, orderID)
}

func (s *orderService) RemoveItem(ctx context.Context, id string) error {
	return s.orders.DeleteItem(ctx, id)
}
