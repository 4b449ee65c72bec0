package statemachine

import (
	"restaurant-orders-api/models"
)

// Transition is one step of the delivery lifecycle
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// lifecycle lists every known status in delivery order
var lifecycle = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// assignable are the statuses an update request may set; delivered is not one of them
var assignable = map[models.OrderStatus]bool{
	models.StatusPending:        true,
	models.StatusPreparing:      true,
	models.StatusOutForDelivery: true,
}

// Known reports whether s is one of the lifecycle statuses
func Known(s models.OrderStatus) bool {
	for _, l := range lifecycle {
		if l == s {
			return true
		}
	}
	return false
}

// Assignable reports whether an update may set status s
func Assignable(s models.OrderStatus) bool {
	return assignable[s]
}

// Mutable reports whether an order in status s still accepts updates
func Mutable(s models.OrderStatus) bool {
	return s != models.StatusDelivered
}

// Deletable reports whether an order in status s may be removed
func Deletable(s models.OrderStatus) bool {
	return s == models.StatusPending
}

// Statuses returns the lifecycle in delivery order
func Statuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(lifecycle))
	copy(out, lifecycle)
	return out
}

// Transitions returns the forward steps of the lifecycle
func Transitions() []Transition {
	out := make([]Transition, 0, len(lifecycle)-1)
	for i := 1; i < len(lifecycle); i++ {
		out = append(out, Transition{From: lifecycle[i-1], To: lifecycle[i]})
	}
	return out
}

// StatusRules summarizes what an order in a given status allows
type StatusRules struct {
	Status     models.OrderStatus `json:"status"`
	Assignable bool               `json:"assignable"`
	Mutable    bool               `json:"mutable"`
	Deletable  bool               `json:"deletable"`
}

// Rules returns the rules for every status, for documentation endpoints
func Rules() []StatusRules {
	out := make([]StatusRules, 0, len(lifecycle))
	for _, s := range lifecycle {
		out = append(out, StatusRules{
			Status:     s,
			Assignable: Assignable(s),
			Mutable:    Mutable(s),
			Deletable:  Deletable(s),
		})
	}
	return out
}
