package main

import (
	"context"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/database"
	"oakcraft/internal/features/catalog"
	"oakcraft/internal/features/content"
	"oakcraft/internal/features/pricing"
	"oakcraft/internal/features/user"
	"oakcraft/internal/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed provisions the catalog, pricing tables, marketing pages and the
// bootstrap super_admin account. Everything is upserted, so re-running is
// safe.
func Seed(
	lc fx.Lifecycle,
	cfg *config.Config,
	categoryRepo catalog.CategoryRepository,
	ruleRepo pricing.PriceRuleRepository,
	pageRepo content.PageRepository,
	userRepo user.UserRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()

				logger.Info("Starting database seeding...")

				// 1. Catalog
				for _, category := range catalog.DefaultCatalog() {
					cat := category
					if err := categoryRepo.Upsert(ctx, &cat); err != nil {
						logger.Fatal("Failed to seed category", zap.String("category", cat.ID), zap.Error(err))
					}
				}
				logger.Info("Catalog seeded", zap.Int("categories", len(catalog.DefaultCatalog())))

				// 2. Pricing tables
				for _, rule := range pricing.DefaultPriceRules() {
					r := rule
					if err := ruleRepo.Upsert(ctx, &r); err != nil {
						logger.Fatal("Failed to seed price rule", zap.String("key", r.Key), zap.Error(err))
					}
				}
				for _, fallback := range pricing.DefaultFallbacks() {
					f := fallback
					if err := ruleRepo.UpsertFallback(ctx, &f); err != nil {
						logger.Fatal("Failed to seed fallback table", zap.String("category", f.Category), zap.Error(err))
					}
				}
				for _, rate := range pricing.DefaultRates() {
					r := rate
					if err := ruleRepo.UpsertRate(ctx, &r); err != nil {
						logger.Fatal("Failed to seed rate table", zap.String("category", r.Category), zap.Error(err))
					}
				}
				logger.Info("Pricing tables seeded")

				// 3. Marketing pages
				pages := []content.Page{
					{Slug: "terms", Title: "Terms & Conditions", Body: "Our standard terms of sale.", Published: true},
					{Slug: "privacy", Title: "Privacy Policy", Body: "How we handle your data.", Published: true},
					{Slug: "faq", Title: "Frequently Asked Questions", Body: "Answers about oak framing, lead times and delivery.", Published: true},
				}
				for _, page := range pages {
					p := page
					if err := pageRepo.Upsert(ctx, &p); err != nil {
						logger.Fatal("Failed to seed page", zap.String("slug", p.Slug), zap.Error(err))
					}
				}
				logger.Info("Pages seeded", zap.Int("count", len(pages)))

				// 4. Bootstrap super_admin
				adminUsername := "admin"
				if existing, _ := userRepo.FindByUsername(ctx, adminUsername); existing != nil {
					logger.Info("Super admin exists, skipping", zap.String("username", adminUsername))
				} else {
					hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
					if err != nil {
						logger.Fatal("Failed to hash admin password", zap.Error(err))
					}

					now := time.Now()
					admin := &common_models.User{
						Username: adminUsername,
						Password: string(hashed),
						Email:    "admin@oakcraft.local",
						Status:   "active",
						Permissions: common_models.PermissionAssignment{
							Role: common_models.RoleSuperAdmin,
						},
						CreatedAt: now,
						UpdatedAt: now,
					}
					if err := userRepo.Create(ctx, admin); err != nil {
						logger.Fatal("Failed to create super admin", zap.Error(err))
					}
					logger.Info("Super admin created", zap.String("username", adminUsername))
				}

				logger.Info("Seeding complete")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,

			catalog.NewCategoryRepository,
			pricing.NewPriceRuleRepository,
			content.NewPageRepository,
			user.NewUserRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
