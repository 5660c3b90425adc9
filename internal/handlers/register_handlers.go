package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/retailware/cashbox_backend/cmd/docs"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
	"github.com/retailware/cashbox_backend/internal/middleware"
	"github.com/retailware/cashbox_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services.UserSvc)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.UserSvc)
	registerCashBoxRoutes(v1, services.CashBoxSvc)
	registerMoneyBoxRoutes(v1, services.MoneyBoxSvc)
	registerSaleRoutes(v1, services.SaleSvc)
	registerPurchaseRoutes(v1, services.PurchaseSvc)
	registerExpenseRoutes(v1, services.ExpenseSvc)
	registerReceiptRoutes(v1, services.ReceiptSvc)
	registerDebtRoutes(v1, services.DebtSvc)
	registerInstallmentRoutes(v1, services.InstallmentSvc)
	registerReportingRoutes(v1, services.ReportingSvc)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
