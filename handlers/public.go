package handlers

import (
	"net/http"

	"restaurant-orders-api/apperror"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health reports that the service is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Orders API",
		"version": "1.0.0",
	})
}

// Welcome lists the entry points of the API
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the Restaurant Orders API",
		"resources": []string{"/dishes", "/orders"},
		"docs":      "/state-machine",
		"health":    "/health",
	})
}

// GetStateMachineInfo describes the order status lifecycle and what each
// status allows
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statemachine.Statuses(),
		"lifecycle":       statemachine.Transitions(),
		"rules":           statemachine.Rules(),
		"default_status":  models.StatusPending,
		"terminal_states": []models.OrderStatus{models.StatusDelivered},
		"description":     "Order delivery lifecycle",
	})
}

// NotFound answers requests for paths no route serves
func NotFound(c *gin.Context) {
	middleware.Fail(c, apperror.NotFound("Path not found: %s", c.Request.URL.Path))
}

// MethodNotAllowed answers requests for a known path with an unsupported method
func MethodNotAllowed(c *gin.Context) {
	middleware.Fail(c, apperror.MethodNotAllowed("%s not allowed for %s", c.Request.Method, c.Request.URL.Path))
}
