package main

import (
	"context"
	"fmt"
	"log"

	common_api "oakcraft/internal/common/api"
	"oakcraft/internal/config"
	"oakcraft/internal/database"
	"oakcraft/internal/features/audit"
	"oakcraft/internal/features/auth"
	"oakcraft/internal/features/basket"
	"oakcraft/internal/features/catalog"
	"oakcraft/internal/features/content"
	"oakcraft/internal/features/dashboard"
	"oakcraft/internal/features/order"
	"oakcraft/internal/features/permission"
	"oakcraft/internal/features/pricing"
	"oakcraft/internal/features/system"
	"oakcraft/internal/features/user"
	"oakcraft/internal/logger"
	"oakcraft/internal/middleware"
	"oakcraft/internal/payment"
	"oakcraft/pkg/utils"

	_ "oakcraft/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// NewRoleEvaluator builds the evaluator from the built-in role table.
func NewRoleEvaluator() *permission.Evaluator {
	return permission.NewEvaluator(permission.DefaultRolePermissions())
}

// @title           Oakcraft Storefront API
// @version         1.0
// @description     Configurable oak structure storefront and back office using Fiber, Uber Fx and MongoDB.

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Outbound clients and shared infrastructure
			payment.NewClient,
			system.NewHub,

			// Initialize Repository
			audit.NewAuditRepository,
			user.NewUserRepository,
			catalog.NewCategoryRepository,
			pricing.NewPriceRuleRepository,
			basket.NewBasketRepository,
			order.NewOrderRepository,
			content.NewPageRepository,

			// Initialize Service
			audit.NewAuditService,
			NewRoleEvaluator,
			permission.NewPermissionService,
			catalog.NewCatalogService,
			pricing.NewPricingService,
			basket.NewBasketService,
			order.NewOrderService,
			content.NewContentService,
			dashboard.NewDashboardService,
			user.NewUserService,
			auth.NewAuthService,

			// Interface Adapters to break circular dependencies and satisfy Fx
			func(r user.UserRepository) permission.AssignmentStore { return r },
			func(s permission.PermissionService) middleware.PermissionChecker { return s },

			// Initialize Controller
			audit.NewAuditController,
			auth.NewAuthController,
			user.NewUserController,
			catalog.NewCatalogController,
			pricing.NewPricingController,
			basket.NewBasketController,
			order.NewOrderController,
			content.NewContentController,
			dashboard.NewDashboardController,
			permission.NewPermissionController,
			system.NewWebSocketController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(catalog.NewCatalogApi),
			AsRoute(pricing.NewPricingApi),
			AsRoute(basket.NewBasketApi),
			AsRoute(order.NewOrderApi),
			AsRoute(content.NewContentApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(permission.NewPermissionApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(system.NewWebSocketApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
