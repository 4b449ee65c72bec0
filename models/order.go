package models

// OrderStatus represents the delivery state of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

type Order struct {
	ID           string      `json:"id" yaml:"id" gorm:"primaryKey;column:id"`
	DeliverTo    string      `json:"deliverTo" yaml:"deliverTo" gorm:"column:deliver_to;not null"`
	MobileNumber string      `json:"mobileNumber" yaml:"mobileNumber" gorm:"column:mobile_number;not null"`
	Status       OrderStatus `json:"status" yaml:"status" gorm:"column:status;not null;default:'pending';index"`
	Dishes       []LineItem  `json:"dishes" yaml:"dishes" gorm:"column:dishes;serializer:json"`
	Seq          int64       `json:"-" yaml:"-" gorm:"column:seq;index"`
}

// LineItem is one entry of an order as the client sent it. Only quantity
// is checked; the other dish fields are an informal snapshot and are kept
// exactly as given.
type LineItem map[string]any

// Clone copies the item and any nested objects or arrays.
func (l LineItem) Clone() LineItem {
	if l == nil {
		return nil
	}
	return cloneValue(map[string]any(l)).(map[string]any)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}
