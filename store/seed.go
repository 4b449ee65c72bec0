package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"restaurant-orders-api/idgen"
	"restaurant-orders-api/models"
	"restaurant-orders-api/validation"

	"github.com/goccy/go-yaml"
)

// Seed is the startup data file. JSON documents parse too.
type Seed struct {
	Dishes []models.Dish  `yaml:"dishes"`
	Orders []models.Order `yaml:"orders"`
}

func LoadSeed(path string) (Seed, error) {
	var s Seed
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read seed: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return s, nil
}

// ApplySeed inserts the seed records in file order. Records without an id
// get a generated one; orders without a status become pending. Every record
// must pass the same field rules as a request body, and an order's status
// must be one of the lifecycle states.
func ApplySeed(ctx context.Context, repo Repository, s Seed) error {
	for i, d := range s.Dishes {
		if err := validation.DishRecord(d); err != nil {
			return fmt.Errorf("seed dish %d: %w", i, err)
		}
		if d.ID == "" {
			id, err := idgen.Next(func(id string) (bool, error) { return Exists(repo.GetDish(ctx, id)) })
			if err != nil {
				return err
			}
			d.ID = id
		}
		if _, err := repo.CreateDish(ctx, d); err != nil {
			return fmt.Errorf("seed dish %s: %w", d.ID, err)
		}
	}
	for i, o := range s.Orders {
		if o.Status == "" {
			o.Status = models.StatusPending
		}
		if err := validation.OrderRecord(o); err != nil {
			return fmt.Errorf("seed order %d: %w", i, err)
		}
		if o.ID == "" {
			id, err := idgen.Next(func(id string) (bool, error) { return Exists(repo.GetOrder(ctx, id)) })
			if err != nil {
				return err
			}
			o.ID = id
		}
		if _, err := repo.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
	}
	return nil
}

// Exists turns the result of a Get call into an idgen.Taken answer.
func Exists(_ any, err error) (bool, error) {
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
