package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
)

type supplierService struct {
	suppliers repository.SupplierRepo
}

func NewSupplierService(suppliers repository.SupplierRepo) SupplierService {
	return &supplierService{suppliers: suppliers}
}

func (s *supplierService) Create(ctx context.Context, sup *domain.Supplier) error {
	if sup.Name == "" {
		return fmt.Errorf("supplier name is required")
	}
	if sup.ID == "" {
		sup.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sup.CreatedAt = now
	sup.UpdatedAt = now
	return s.suppliers.Create(ctx, sup)
}

func (s *supplierService) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context) ([]*domain.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *supplierService) Update(ctx context.Context, sup *domain.Supplier) error {
	sup.UpdatedAt = time.Now().UTC()
	return s.suppliers.Update(ctx, sup)
}

func (s *supplierService) Delete(ctx context.Context, id string) error {
	return s.suppliers.Delete(ctx, id)
}
