package catalog

import (
	"context"
	"fmt"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"
)

type CatalogService interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	UpdateCategory(ctx context.Context, id string, category *Category) error
}

type CatalogServiceImpl struct {
	CategoryRepo CategoryRepository
	AuditService audit.AuditService
}

func NewCatalogService(categoryRepo CategoryRepository, auditService audit.AuditService) CatalogService {
	return &CatalogServiceImpl{
		CategoryRepo: categoryRepo,
		AuditService: auditService,
	}
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]Category, error) {
	return s.CategoryRepo.List(ctx)
}

func (s *CatalogServiceImpl) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.CategoryRepo.FindByID(ctx, id)
}

// UpdateCategory replaces a category's option table. The option invariants
// (legal defaults, sane ranges, unique ids) are enforced here so a broken
// table never reaches the pricing engine.
func (s *CatalogServiceImpl) UpdateCategory(ctx context.Context, id string, category *Category) error {
	if category.ID != "" && category.ID != id {
		return fmt.Errorf("category id mismatch")
	}
	category.ID = id

	if err := category.Validate(); err != nil {
		return err
	}

	if err := s.CategoryRepo.Upsert(ctx, category); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "catalog", id, map[string]common_models.Change{
		"options": {New: len(category.Options)},
	})
	return nil
}
