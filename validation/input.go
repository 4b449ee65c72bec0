package validation

import (
	"math"
	"strconv"

	"restaurant-orders-api/models"
)

// DishInput is the "data" object of a dish request. Fields stay untyped so
// that wrong JSON types surface as validation messages, not decode errors.
type DishInput struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	Description any `json:"description"`
	Price       any `json:"price"`
	ImageURL    any `json:"image_url"`
}

// OrderInput is the "data" object of an order request.
type OrderInput struct {
	ID           any `json:"id"`
	DeliverTo    any `json:"deliverTo"`
	MobileNumber any `json:"mobileNumber"`
	Status       any `json:"status"`
	Dishes       any `json:"dishes"`
}

// Dish converts a validated input. The id is left for the caller to set.
func (in DishInput) Dish() models.Dish {
	name, _ := Text(in.Name)
	description, _ := Text(in.Description)
	price, _ := PositiveInt(in.Price)
	imageURL, _ := Text(in.ImageURL)
	return models.Dish{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
}

// Order converts a validated input. A missing status is returned empty.
func (in OrderInput) Order() models.Order {
	deliverTo, _ := Text(in.DeliverTo)
	mobile, _ := Text(in.MobileNumber)
	status, _ := Text(in.Status)
	items, _ := in.Dishes.([]any)

	lines := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		lines = append(lines, models.LineItem(fields))
	}
	return models.Order{
		DeliverTo:    deliverTo,
		MobileNumber: mobile,
		Status:       models.OrderStatus(status),
		Dishes:       lines,
	}
}

// Text returns v when it is a non-empty string.
func Text(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// PositiveInt returns v as an int when it is a whole number greater than 0.
// JSON numbers arrive as float64 and YAML integers as int64 or uint64; a
// string is never accepted.
func PositiveInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n <= 0 || n != math.Trunc(n) || n >= float64(math.MaxInt) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, n > 0
	case int64:
		if n <= 0 || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n == 0 || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// ID normalizes a body identifier to its canonical string form. Absent
// means nil or the empty string.
func ID(v any) (string, bool) {
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		return id, id != ""
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case uint64:
		return strconv.FormatUint(id, 10), true
	case bool:
		return strconv.FormatBool(id), true
	default:
		return "", false
	}
}

func present(v any) bool {
	if v == nil {
		return false
	}
	s, ok := v.(string)
	return !ok || s != ""
}
