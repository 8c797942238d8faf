package router

import (
	"time"

	"github.com/OliverHuron/SICAII/internal/config"
	"github.com/OliverHuron/SICAII/internal/handler"
	"github.com/OliverHuron/SICAII/internal/middleware"
	"github.com/OliverHuron/SICAII/internal/repository"
	"github.com/OliverHuron/SICAII/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
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
	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo, departmentRepo, requestRepo, cfg.BcryptCost)
	departmentSvc := service.NewDepartmentService(departmentRepo, inventoryRepo, requestRepo, userRepo)
	categorySvc := service.NewCategoryService(categoryRepo, inventoryRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo, categoryRepo, departmentRepo, requestRepo)
	requestSvc := service.NewRequestService(requestRepo, inventoryRepo, departmentRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, userRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	departmentsH := handler.NewDepartmentsHandler(departmentSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	requestsH := handler.NewRequestsHandler(requestSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin()
	api := r.Group("/api", jwtMW)
	{
		// Departments and categories — all authenticated users can read,
		// only administrators can write.
		api.GET("/departments", departmentsH.List)
		api.GET("/departments/:id", departmentsH.Get)
		api.POST("/departments", adminMW, departmentsH.Create)
		api.PUT("/departments/:id", adminMW, departmentsH.Update)
		api.DELETE("/departments/:id", adminMW, departmentsH.Delete)

		api.GET("/categories", categoriesH.List)
		api.GET("/categories/:id", categoriesH.Get)
		api.POST("/categories", adminMW, categoriesH.Create)
		api.PUT("/categories/:id", adminMW, categoriesH.Update)
		api.DELETE("/categories/:id", adminMW, categoriesH.Delete)

		// Inventory — list and writes are admin-only; single items are
		// readable by any authenticated user (request forms reference them).
		api.GET("/inventory", adminMW, inventoryH.List)
		api.GET("/inventory/:id", inventoryH.Get)
		api.POST("/inventory", adminMW, inventoryH.Create)
		api.PUT("/inventory/:id", adminMW, inventoryH.Update)
		api.DELETE("/inventory/:id", adminMW, inventoryH.Delete)

		// Requests — ownership and lifecycle rules enforced in the service.
		api.GET("/requests", requestsH.List)
		api.GET("/requests/:id", requestsH.Get)
		api.POST("/requests", requestsH.Create)
		api.PUT("/requests/:id", requestsH.Update)
		api.DELETE("/requests/:id", requestsH.Delete)

		// Users — admin only.
		users := api.Group("/users", adminMW)
		{
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.POST("", usersH.Create)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		api.GET("/dashboard", dashboardH.Summary)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
