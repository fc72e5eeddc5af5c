package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"
	"oakcraft/internal/features/catalog"

	"go.uber.org/zap"
)

type PricingService interface {
	// Quote prices and describes a configuration in one pass.
	Quote(ctx context.Context, category string, state catalog.ConfigState) (*Quote, error)
	// QuoteEncoded prices a previously encoded state (preview/basket hand-off).
	QuoteEncoded(ctx context.Context, category, encoded string) (*Quote, error)
	ListRules(ctx context.Context, category string) ([]PriceRule, error)
	UpsertRule(ctx context.Context, rule *PriceRule) error
	DeleteRule(ctx context.Context, id string) error
	// Reload rebuilds the engine from the persisted tables.
	Reload(ctx context.Context) error
}

type PricingServiceImpl struct {
	CategoryRepo catalog.CategoryRepository
	RuleRepo     PriceRuleRepository
	AuditService audit.AuditService
	Logger       *zap.Logger

	mu     sync.RWMutex
	engine *Engine
}

// NewPricingService loads the pricing tables once at startup and builds an
// immutable engine from them. Admin writes go through UpsertRule/DeleteRule
// which rebuild the engine.
func NewPricingService(categoryRepo catalog.CategoryRepository, ruleRepo PriceRuleRepository, auditService audit.AuditService, logger *zap.Logger) (PricingService, error) {
	s := &PricingServiceImpl{
		CategoryRepo: categoryRepo,
		RuleRepo:     ruleRepo,
		AuditService: auditService,
		Logger:       logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Reload(ctx); err != nil {
		return nil, fmt.Errorf("loading pricing tables: %w", err)
	}
	return s, nil
}

func (s *PricingServiceImpl) Reload(ctx context.Context) error {
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return err
	}
	rules, err := s.RuleRepo.List(ctx, "")
	if err != nil {
		return err
	}
	fallbacks, err := s.RuleRepo.ListFallbacks(ctx)
	if err != nil {
		return err
	}
	rates, err := s.RuleRepo.ListRates(ctx)
	if err != nil {
		return err
	}

	engine := NewEngine(categories, rules, fallbacks, rates)

	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()

	s.Logger.Info("pricing engine loaded",
		zap.Int("categories", len(categories)),
		zap.Int("rules", len(rules)))
	return nil
}

func (s *PricingServiceImpl) currentEngine() *Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *PricingServiceImpl) Quote(ctx context.Context, category string, state catalog.ConfigState) (*Quote, error) {
	engine := s.currentEngine()

	price, err := engine.Price(category, state)
	if err != nil {
		return nil, err
	}
	description, err := engine.Describe(category, state)
	if err != nil {
		return nil, err
	}
	encoded, err := EncodeState(state)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Category:     category,
		Price:        price.StringFixed(2),
		Description:  description,
		EncodedState: encoded,
		Configurable: price.IsPositive(),
	}, nil
}

func (s *PricingServiceImpl) QuoteEncoded(ctx context.Context, category, encoded string) (*Quote, error) {
	state, err := DecodeState(encoded)
	if err != nil {
		return nil, err
	}
	return s.Quote(ctx, category, state)
}

func (s *PricingServiceImpl) ListRules(ctx context.Context, category string) ([]PriceRule, error) {
	return s.RuleRepo.List(ctx, category)
}

func (s *PricingServiceImpl) UpsertRule(ctx context.Context, rule *PriceRule) error {
	if rule.Category == "" || rule.Key == "" {
		return fmt.Errorf("price rule needs category and key")
	}
	if rule.Price < 0 {
		return fmt.Errorf("price rule cannot be negative")
	}

	if err := s.RuleRepo.Upsert(ctx, rule); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "pricing", rule.Category, map[string]common_models.Change{
		rule.Key: {New: rule.Price},
	})

	return s.Reload(ctx)
}

func (s *PricingServiceImpl) DeleteRule(ctx context.Context, id string) error {
	if err := s.RuleRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, "pricing", id, nil)

	return s.Reload(ctx)
}
