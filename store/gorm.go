package store

import (
	"context"
	"errors"
	"fmt"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// Gorm is a Repository backed by a gorm database. Insertion order is kept
// in the seq column.
type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the dish and order tables and returns the store
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.Dish{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) ListDishes(ctx context.Context) ([]models.Dish, error) {
	dishes := []models.Dish{}
	if err := g.db.WithContext(ctx).Order("seq asc").Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

func (g *Gorm) GetDish(ctx context.Context, id string) (models.Dish, error) {
	var d models.Dish
	if err := g.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return models.Dish{}, notFound("get dish", err)
	}
	return d, nil
}

func (g *Gorm) CreateDish(ctx context.Context, d models.Dish) (models.Dish, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkFree(tx, &models.Dish{}, d.ID); err != nil {
			return err
		}
		seq, err := nextSeq(tx, &models.Dish{})
		if err != nil {
			return err
		}
		d.Seq = seq
		return tx.Create(&d).Error
	})
	if err != nil {
		return models.Dish{}, fmt.Errorf("create dish: %w", err)
	}
	return d, nil
}

func (g *Gorm) UpdateDish(ctx context.Context, d models.Dish) (models.Dish, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Dish
		if err := tx.First(&existing, "id = ?", d.ID).Error; err != nil {
			return err
		}
		d.Seq = existing.Seq
		return tx.Save(&d).Error
	})
	if err != nil {
		return models.Dish{}, notFound("update dish", err)
	}
	return d, nil
}

func (g *Gorm) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	orders := []models.Order{}
	query := g.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("seq asc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (g *Gorm) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	if err := g.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return models.Order{}, notFound("get order", err)
	}
	return o, nil
}

func (g *Gorm) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkFree(tx, &models.Order{}, o.ID); err != nil {
			return err
		}
		seq, err := nextSeq(tx, &models.Order{})
		if err != nil {
			return err
		}
		o.Seq = seq
		return tx.Create(&o).Error
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (g *Gorm) UpdateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		if err := tx.First(&existing, "id = ?", o.ID).Error; err != nil {
			return err
		}
		o.Seq = existing.Seq
		return tx.Save(&o).Error
	})
	if err != nil {
		return models.Order{}, notFound("update order", err)
	}
	return o, nil
}

func (g *Gorm) DeleteOrder(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func nextSeq(tx *gorm.DB, model any) (int64, error) {
	var last int64
	if err := tx.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&last).Error; err != nil {
		return 0, err
	}
	return last + 1, nil
}

func checkFree(tx *gorm.DB, model any, id string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateID
	}
	return nil
}

func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
