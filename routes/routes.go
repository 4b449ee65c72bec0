package routes

import (
	"sync"

	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.Health)
	r.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Dishes ─────────────────────────────────────────────────────
	// Writes to one collection run one at a time so that a chain's checks
	// still hold when its handler mutates the store.
	var dishWrites sync.Mutex
	dishes := r.Group("/dishes")
	{
		dishes.GET("", h.ListDishes)
		dishes.POST("", middleware.Serialize(&dishWrites), h.DishFields, h.CreateDish)
		dishes.GET("/:dishId", h.DishExists, h.ReadDish)
		dishes.PUT("/:dishId", middleware.Serialize(&dishWrites), h.DishExists, h.DishFields, h.DishIDMatches, h.UpdateDish)
	}

	// ── Orders ─────────────────────────────────────────────────────
	var orderWrites sync.Mutex
	orders := r.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", middleware.Serialize(&orderWrites), h.OrderFields, h.CreateOrder)
		orders.GET("/:orderId", h.OrderExists, h.ReadOrder)
		orders.PUT("/:orderId", middleware.Serialize(&orderWrites), h.OrderExists, h.OrderFields, h.OrderUpdatable, h.UpdateOrder)
		orders.DELETE("/:orderId", middleware.Serialize(&orderWrites), h.OrderExists, h.OrderDeletable, h.DeleteOrder)
	}
}

// NewRouter builds the engine with the shared middleware stack and all routes
func NewRouter(h *handlers.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(log), middleware.ErrorHandler(log), middleware.Recovery(log), middleware.CORS())
	SetupRoutes(r, h)
	return r
}
