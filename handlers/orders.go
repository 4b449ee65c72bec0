package handlers

import (
	"errors"
	"net/http"

	"restaurant-orders-api/apperror"
	"restaurant-orders-api/idgen"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/store"
	"restaurant-orders-api/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderExists loads the order named by :orderId for the rest of the chain
func (h *Handler) OrderExists(c *gin.Context) {
	id := c.Param("orderId")
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.Fail(c, apperror.NotFound("Order does not exist: %s", id))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Set(orderKey, order)
}

// OrderFields rejects a body with missing contact details or bad line items
func (h *Handler) OrderFields(c *gin.Context) {
	in, err := orderInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if err := validation.Order(in); err != nil {
		middleware.Fail(c, err)
	}
}

// OrderUpdatable checks the route id and status rules of an update
func (h *Handler) OrderUpdatable(c *gin.Context) {
	in, err := orderInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	current := c.MustGet(orderKey).(models.Order)
	if err := validation.OrderUpdate(c.Param("orderId"), current, in); err != nil {
		middleware.Fail(c, err)
	}
}

// OrderDeletable only lets pending orders through
func (h *Handler) OrderDeletable(c *gin.Context) {
	if err := validation.OrderDelete(c.MustGet(orderKey).(models.Order)); err != nil {
		middleware.Fail(c, err)
	}
}

// ListOrders returns orders in insertion order, optionally filtered by
// ?status=. The filter matches the stored value, so a status accepted at
// create time outside the lifecycle can still be listed.
func (h *Handler) ListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	orders, err := h.orders.ListOrders(c.Request.Context(), status)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, data(orders))
}

// CreateOrder stores the validated body under a fresh id, pending unless a
// status was supplied
func (h *Handler) CreateOrder(c *gin.Context) {
	in, err := orderInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	ctx := c.Request.Context()
	order := in.Order()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	order.ID, err = idgen.Next(func(id string) (bool, error) {
		return store.Exists(h.orders.GetOrder(ctx, id))
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	created, err := h.orders.CreateOrder(ctx, order)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.log.Info("order created", zapID(created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusCreated, data(created))
}

// ReadOrder returns the order loaded by OrderExists
func (h *Handler) ReadOrder(c *gin.Context) {
	c.JSON(http.StatusOK, data(c.MustGet(orderKey).(models.Order)))
}

// UpdateOrder replaces every field of the loaded order except its id
func (h *Handler) UpdateOrder(c *gin.Context) {
	in, err := orderInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	current := c.MustGet(orderKey).(models.Order)
	order := in.Order()
	order.ID = current.ID

	updated, err := h.orders.UpdateOrder(c.Request.Context(), order)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.log.Info("order updated", zapID(updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)),
	)
	c.JSON(http.StatusOK, data(updated))
}

// DeleteOrder removes the loaded order
func (h *Handler) DeleteOrder(c *gin.Context) {
	current := c.MustGet(orderKey).(models.Order)
	if err := h.orders.DeleteOrder(c.Request.Context(), current.ID); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.log.Info("order deleted", zapID(current.ID))
	c.Status(http.StatusNoContent)
}

func zapID(id string) zap.Field {
	return zap.String("id", id)
}
