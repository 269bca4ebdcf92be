package router

import (
	"time"

	"github.com/adifdwimaulana/saas-coding-test/internal/config"
	"github.com/adifdwimaulana/saas-coding-test/internal/handler"
	"github.com/adifdwimaulana/saas-coding-test/internal/middleware"
	"github.com/adifdwimaulana/saas-coding-test/internal/repository"
	"github.com/adifdwimaulana/saas-coding-test/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	pricingRepo := repository.NewPricingRepository(db)
	historyRepo := repository.NewPriceHistoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	pricingSvc := service.NewPricingService(pricingRepo, historyRepo, rdb)
	customerSvc := service.NewCustomerService(customerRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	cacheTTL := time.Duration(cfg.PriceCacheTTLSeconds) * time.Second
	pricingH := handler.NewPricingHandler(pricingSvc, rdb, cacheTTL)
	historyH := handler.NewPriceHistoryHandler(pricingSvc)
	customersH := handler.NewCustomersHandler(customerSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/price", pricingH.Upsert)
		v1.GET("/price", pricingH.List)
		v1.GET("/price-history/:pricing_id", historyH.ListByPricing)
		v1.GET("/customers", customersH.List)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
