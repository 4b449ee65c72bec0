// Package store keeps dishes and orders in insertion order.
package store

import (
	"context"
	"errors"

	"restaurant-orders-api/models"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate id")
)

type DishRepository interface {
	ListDishes(ctx context.Context) ([]models.Dish, error)
	GetDish(ctx context.Context, id string) (models.Dish, error)
	CreateDish(ctx context.Context, d models.Dish) (models.Dish, error)
	UpdateDish(ctx context.Context, d models.Dish) (models.Dish, error)
}

// OrderRepository lists orders filtered by status; an empty status lists all.
type OrderRepository interface {
	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (models.Order, error)
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	UpdateOrder(ctx context.Context, o models.Order) (models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type Repository interface {
	DishRepository
	OrderRepository
}
