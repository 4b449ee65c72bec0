package handlers

import (
	"errors"
	"io"

	"restaurant-orders-api/apperror"
	"restaurant-orders-api/store"
	"restaurant-orders-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// Context keys shared by the links of a handler chain
const (
	dishKey       = "dish"
	dishInputKey  = "dishInput"
	orderKey      = "order"
	orderInputKey = "orderInput"
)

// Handler serves the dish and order routes. Each exported method is one
// link of a gin handler chain; a link that fails pushes an *apperror.Error
// and aborts, so later links only run once every earlier check passed.
type Handler struct {
	dishes store.DishRepository
	orders store.OrderRepository
	log    *zap.Logger
}

func New(repo store.Repository, log *zap.Logger) *Handler {
	return &Handler{dishes: repo, orders: repo, log: log}
}

type dishRequest struct {
	Data validation.DishInput `json:"data"`
}

type orderRequest struct {
	Data validation.OrderInput `json:"data"`
}

// dishInput decodes the request envelope once per request. An empty body
// reads as an empty "data" object.
func dishInput(c *gin.Context) (validation.DishInput, error) {
	if v, ok := c.Get(dishInputKey); ok {
		return v.(validation.DishInput), nil
	}
	var req dishRequest
	if err := bindBody(c, &req); err != nil {
		return validation.DishInput{}, err
	}
	c.Set(dishInputKey, req.Data)
	return req.Data, nil
}

func orderInput(c *gin.Context) (validation.OrderInput, error) {
	if v, ok := c.Get(orderInputKey); ok {
		return v.(validation.OrderInput), nil
	}
	var req orderRequest
	if err := bindBody(c, &req); err != nil {
		return validation.OrderInput{}, err
	}
	c.Set(orderInputKey, req.Data)
	return req.Data, nil
}

func bindBody(c *gin.Context, obj any) error {
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperror.BadRequest("Invalid JSON body: %s", err.Error())
}

func data(v any) gin.H {
	return gin.H{"data": v}
}
