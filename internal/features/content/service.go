package content

import (
	"context"
	"fmt"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"
	"oakcraft/pkg/utils"
)

type SavePageInput struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

type ContentService interface {
	ListPublished(ctx context.Context) ([]Page, error)
	GetPublished(ctx context.Context, slug string) (*Page, error)
	ListAll(ctx context.Context) ([]Page, error)
	SavePage(ctx context.Context, input *SavePageInput) (*Page, error)
	DeletePage(ctx context.Context, slug string) error
}

type ContentServiceImpl struct {
	PageRepo     PageRepository
	AuditService audit.AuditService
}

func NewContentService(pageRepo PageRepository, auditService audit.AuditService) ContentService {
	return &ContentServiceImpl{
		PageRepo:     pageRepo,
		AuditService: auditService,
	}
}

func (s *ContentServiceImpl) ListPublished(ctx context.Context) ([]Page, error) {
	return s.PageRepo.List(ctx, true)
}

func (s *ContentServiceImpl) GetPublished(ctx context.Context, slug string) (*Page, error) {
	page, err := s.PageRepo.FindBySlug(ctx, slug)
	if err != nil || !page.Published {
		return nil, fmt.Errorf("page not found")
	}
	return page, nil
}

func (s *ContentServiceImpl) ListAll(ctx context.Context) ([]Page, error) {
	return s.PageRepo.List(ctx, false)
}

func (s *ContentServiceImpl) SavePage(ctx context.Context, input *SavePageInput) (*Page, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("page title is required")
	}

	// The slug is derived from the title unless set explicitly, so a page
	// keeps its URL across title edits.
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("could not derive a slug from the title")
	}

	page := &Page{
		Slug:      slug,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
	}

	if err := s.PageRepo.Upsert(ctx, page); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "content", slug, map[string]common_models.Change{
		"published": {New: input.Published},
	})

	return s.PageRepo.FindBySlug(ctx, slug)
}

func (s *ContentServiceImpl) DeletePage(ctx context.Context, slug string) error {
	if err := s.PageRepo.Delete(ctx, slug); err != nil {
		return err
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "content", slug, nil)
	return nil
}
