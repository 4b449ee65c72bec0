package store

import (
	"context"
	"sync"

	"restaurant-orders-api/models"
)

// Memory is a process-lifetime Repository. Records are copied on the way in
// and out so callers never share line item slices with the store.
type Memory struct {
	mu      sync.RWMutex
	seq     int64
	dishes  []models.Dish
	orders  []models.Order
	dishIdx map[string]int
	ordIdx  map[string]int
}

func NewMemory() *Memory {
	return &Memory{
		dishIdx: make(map[string]int),
		ordIdx:  make(map[string]int),
	}
}

func (m *Memory) ListDishes(_ context.Context) ([]models.Dish, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Dish, len(m.dishes))
	copy(out, m.dishes)
	return out, nil
}

func (m *Memory) GetDish(_ context.Context, id string) (models.Dish, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.dishIdx[id]
	if !ok {
		return models.Dish{}, ErrNotFound
	}
	return m.dishes[i], nil
}

func (m *Memory) CreateDish(_ context.Context, d models.Dish) (models.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dishIdx[d.ID]; ok {
		return models.Dish{}, ErrDuplicateID
	}
	m.seq++
	d.Seq = m.seq
	m.dishIdx[d.ID] = len(m.dishes)
	m.dishes = append(m.dishes, d)
	return d, nil
}

func (m *Memory) UpdateDish(_ context.Context, d models.Dish) (models.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.dishIdx[d.ID]
	if !ok {
		return models.Dish{}, ErrNotFound
	}
	d.Seq = m.dishes[i].Seq
	m.dishes[i] = d
	return d, nil
}

func (m *Memory) ListOrders(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (m *Memory) GetOrder(_ context.Context, id string) (models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.ordIdx[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return cloneOrder(m.orders[i]), nil
}

func (m *Memory) CreateOrder(_ context.Context, o models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ordIdx[o.ID]; ok {
		return models.Order{}, ErrDuplicateID
	}
	m.seq++
	o = cloneOrder(o)
	o.Seq = m.seq
	m.ordIdx[o.ID] = len(m.orders)
	m.orders = append(m.orders, o)
	return cloneOrder(o), nil
}

func (m *Memory) UpdateOrder(_ context.Context, o models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.ordIdx[o.ID]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	o = cloneOrder(o)
	o.Seq = m.orders[i].Seq
	m.orders[i] = o
	return cloneOrder(o), nil
}

func (m *Memory) DeleteOrder(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.ordIdx[id]
	if !ok {
		return ErrNotFound
	}
	m.orders = append(m.orders[:i], m.orders[i+1:]...)
	delete(m.ordIdx, id)
	for j := i; j < len(m.orders); j++ {
		m.ordIdx[m.orders[j].ID] = j
	}
	return nil
}

func cloneOrder(o models.Order) models.Order {
	if o.Dishes != nil {
		lines := make([]models.LineItem, len(o.Dishes))
		for i, l := range o.Dishes {
			lines[i] = l.Clone()
		}
		o.Dishes = lines
	}
	return o
}
