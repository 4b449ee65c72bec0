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
)

// DishExists loads the dish named by :dishId for the rest of the chain
func (h *Handler) DishExists(c *gin.Context) {
	id := c.Param("dishId")
	dish, err := h.dishes.GetDish(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.Fail(c, apperror.NotFound("Dish does not exist: %s", id))
		return
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Set(dishKey, dish)
}

// DishFields rejects a body with a missing or malformed dish field
func (h *Handler) DishFields(c *gin.Context) {
	in, err := dishInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if err := validation.Dish(in); err != nil {
		middleware.Fail(c, err)
	}
}

// DishIDMatches rejects a body id that differs from :dishId
func (h *Handler) DishIDMatches(c *gin.Context) {
	in, err := dishInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if err := validation.DishMatchesRoute(c.Param("dishId"), in.ID); err != nil {
		middleware.Fail(c, err)
	}
}

// ListDishes returns every dish in insertion order
func (h *Handler) ListDishes(c *gin.Context) {
	dishes, err := h.dishes.ListDishes(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, data(dishes))
}

// CreateDish stores the validated body under a fresh id
func (h *Handler) CreateDish(c *gin.Context) {
	in, err := dishInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	ctx := c.Request.Context()
	dish := in.Dish()
	dish.ID, err = idgen.Next(func(id string) (bool, error) {
		return store.Exists(h.dishes.GetDish(ctx, id))
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	created, err := h.dishes.CreateDish(ctx, dish)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, data(created))
}

// ReadDish returns the dish loaded by DishExists
func (h *Handler) ReadDish(c *gin.Context) {
	c.JSON(http.StatusOK, data(c.MustGet(dishKey).(models.Dish)))
}

// UpdateDish replaces every field of the loaded dish except its id
func (h *Handler) UpdateDish(c *gin.Context) {
	in, err := dishInput(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	current := c.MustGet(dishKey).(models.Dish)
	dish := in.Dish()
	dish.ID = current.ID

	updated, err := h.dishes.UpdateDish(c.Request.Context(), dish)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.log.Debug("dish updated", zapID(updated.ID))
	c.JSON(http.StatusOK, data(updated))
}
