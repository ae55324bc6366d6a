package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pmirek/fabops/internal/domain"
	"github.com/pmirek/fabops/internal/repository"
)

type templateService struct {
	templates repository.TemplateRepo
}

func NewTemplateService(templates repository.TemplateRepo) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) Create(ctx context.Context, t *domain.PlanTemplate) error {
	if t.ProductType == "" {
		return fmt.Errorf("template product type is required")
	}
	if len(t.Stages) == 0 {
		return fmt.Errorf("template needs at least one stage")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC()
	return s.templates.Create(ctx, t)
}

func (s *templateService) GetByProductType(ctx context.Context, productType string) (*domain.PlanTemplate, error) {
	return s.templates.GetByProductType(ctx, productType)
}

func (s *templateService) List(ctx context.Context) ([]*domain.PlanTemplate, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	return s.templates.Delete(ctx, id)
}
