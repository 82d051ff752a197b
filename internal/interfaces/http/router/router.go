package router

import (
	"github.com/gadogest/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the API exposes
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Bootstrap *handler.BootstrapHandler
	Animals   *handler.AnimalHandler
	Health    *handler.HealthRecordHandler
	Finance   *handler.FinancialRecordHandler
	Breeding  *handler.ReproductionEventHandler
	Users     *handler.UserHandler
	Dashboard *handler.DashboardHandler
}

// Router manages HTTP route registration
type Router struct {
	engine   *gin.Engine
	handlers Handlers
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, handlers Handlers) *Router {
	return &Router{
		engine:   engine,
		handlers: handlers,
	}
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	h := r.handlers

	r.engine.GET("/health", h.System.Health)

	api := r.engine.Group("/api/v1")

	api.GET("/ping", h.System.Ping)
	api.GET("/bootstrap", h.Bootstrap.Bootstrap)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", h.Auth.Me)
	}

	animals := api.Group("/animals")
	{
		animals.GET("", h.Animals.List)
		animals.POST("", h.Animals.Create)
		animals.POST("/register", h.Animals.Register)
		animals.GET("/:id", h.Animals.Get)
		animals.PUT("/:id", h.Animals.Update)
		animals.DELETE("/:id", h.Animals.Delete)
	}

	healthRecords := api.Group("/health-records")
	{
		healthRecords.GET("", h.Health.List)
		healthRecords.POST("", h.Health.Create)
		healthRecords.GET("/:id", h.Health.Get)
		healthRecords.PUT("/:id", h.Health.Update)
		healthRecords.DELETE("/:id", h.Health.Delete)
	}

	financialRecords := api.Group("/financial-records")
	{
		financialRecords.GET("", h.Finance.List)
		financialRecords.POST("", h.Finance.Create)
		financialRecords.GET("/:id", h.Finance.Get)
		financialRecords.PUT("/:id", h.Finance.Update)
		financialRecords.DELETE("/:id", h.Finance.Delete)
	}

	reproductionEvents := api.Group("/reproduction-events")
	{
		reproductionEvents.GET("", h.Breeding.List)
		reproductionEvents.POST("", h.Breeding.Create)
		reproductionEvents.GET("/:id", h.Breeding.Get)
		reproductionEvents.PUT("/:id", h.Breeding.Update)
		reproductionEvents.DELETE("/:id", h.Breeding.Delete)
	}

	users := api.Group("/users")
	{
		users.GET("", h.Users.List)
		users.POST("", h.Users.Create)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id", h.Users.Update)
		users.PATCH("/:id/activate", h.Users.Activate)
		users.PATCH("/:id/deactivate", h.Users.Deactivate)
		users.DELETE("/:id", h.Users.Delete)
	}

	api.GET("/dashboard/summary", h.Dashboard.Summary)
}
