package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gestorlabs/gestor/internal/api/handler"
	"github.com/gestorlabs/gestor/internal/api/middleware"
	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
	"github.com/gestorlabs/gestor/internal/core/service"
	"github.com/gestorlabs/gestor/internal/core/token"
	redisdb "github.com/gestorlabs/gestor/internal/infrastructure/db/redis"
	"github.com/gestorlabs/gestor/internal/infrastructure/db/sqlite"
)

// RouterConfig carries the runtime settings the router needs beyond
// its infrastructure handles.
type RouterConfig struct {
	TokenSecret  string
	CookieDomain string
	CORSOrigin   string
}

// NewRouter builds the Echo instance with every route registered. rdb
// may be nil, in which case role lookups go straight to the database.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("gestor"))

	// Repositories. The role repository sits behind a Redis cache when
	// one is available; the request gate resolves a role on every call.
	userRepo := sqlite.NewUserRepository(db)
	var roleRepo ports.RoleRepository = sqlite.NewRoleRepository(db)
	if rdb != nil {
		roleRepo = redisdb.NewRoleCache(roleRepo, rdb)
	}
	clientRepo := sqlite.NewClientRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	statusRepo := sqlite.NewStatusRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	transactionRepo := sqlite.NewTransactionRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)

	// Services.
	codec := token.NewCodec(cfg.TokenSecret)
	authService := service.NewAuthService(userRepo, codec, log)
	authzService := service.NewAuthzService(roleRepo, log)
	roleService := service.NewRoleService(roleRepo, userRepo, log)
	userService := service.NewUserService(userRepo, roleRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	supplierService := service.NewSupplierService(supplierRepo, log)
	statusService := service.NewStatusService(statusRepo, log)
	projectService := service.NewProjectService(projectRepo, clientRepo, statusRepo, log)
	transactionService := service.NewTransactionService(transactionRepo, statusRepo, log)
	taskService := service.NewTaskService(taskRepo, statusRepo, log)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService, authzService, cfg.CookieDomain)
	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	statusHandler := handler.NewStatusHandler(statusService)
	projectHandler := handler.NewProjectHandler(projectService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	taskHandler := handler.NewTaskHandler(taskService)

	session := middleware.Session(codec)

	// Session endpoints.
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/permissions", authHandler.Permissions, session)

	// Roles ("auths"). Admin enforcement lives inside the service so a
	// missing record is reported before a missing capability.
	auths := e.Group("/auths", session)
	auths.GET("/:id", roleHandler.Get)
	auths.POST("", roleHandler.Create)
	auths.PUT("/:id", roleHandler.Update)
	auths.DELETE("/:id", roleHandler.Delete)

	// Users: the whole surface needs the admin capability.
	users := e.Group("/users", session, middleware.Capability(authzService, domain.CapabilityAdmin))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// Clients and suppliers: reads need a session, writes the personal
	// capability.
	personal := middleware.Capability(authzService, domain.CapabilityPersonal)
	clients := e.Group("/clients", session)
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.POST("", clientHandler.Create, personal)
	clients.PUT("/:id", clientHandler.Update, personal)
	clients.DELETE("/:id", clientHandler.Delete, personal)

	suppliers := e.Group("/suppliers", session)
	suppliers.GET("", supplierHandler.List)
	suppliers.GET("/:id", supplierHandler.Get)
	suppliers.POST("", supplierHandler.Create, personal)
	suppliers.PUT("/:id", supplierHandler.Update, personal)
	suppliers.DELETE("/:id", supplierHandler.Delete, personal)

	// Projects, tasks and statuses: writes need the project capability.
	project := middleware.Capability(authzService, domain.CapabilityProject)
	projects := e.Group("/projects", session)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create, project)
	projects.PUT("/:id", projectHandler.Update, project)
	projects.DELETE("/:id", projectHandler.Delete, project)

	tasks := e.Group("/tasks", session)
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create, project)
	tasks.PUT("/:id", taskHandler.Update, project)
	tasks.DELETE("/:id", taskHandler.Delete, project)

	statuses := e.Group("/statuses", session)
	statuses.GET("", statusHandler.List)
	statuses.GET("/:id", statusHandler.Get)
	statuses.POST("", statusHandler.Create, project)
	statuses.PUT("/:id", statusHandler.Update, project)
	statuses.DELETE("/:id", statusHandler.Delete, project)

	// Transactions: the whole surface needs the financial capability.
	transactions := e.Group("/transactions", session, middleware.Capability(authzService, domain.CapabilityFinancial))
	transactions.GET("", transactionHandler.List)
	transactions.GET("/:id", transactionHandler.Get)
	transactions.POST("", transactionHandler.Create)
	transactions.PUT("/:id", transactionHandler.Update)
	transactions.POST("/:id/pay", transactionHandler.Pay)
	transactions.DELETE("/:id", transactionHandler.Delete)

	// Health probes and metrics, no auth required.
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
