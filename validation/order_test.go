package validation

import (
	"reflect"
	"testing"

	"restaurant-orders-api/models"
)

func line(quantity any) map[string]any {
	return map[string]any{"id": "d1", "name": "Taco", "quantity": quantity}
}

func validOrder() OrderInput {
	return OrderInput{
		DeliverTo:    "308 Negra Arroyo Lane",
		MobileNumber: "(505) 143-3369",
		Status:       "pending",
		Dishes:       []any{line(float64(2))},
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*OrderInput)
		want   string
	}{
		{name: "valid", modify: func(*OrderInput) {}},
		{name: "quantity above int32", modify: func(o *OrderInput) { o.Dishes = []any{line(float64(3000000000))} }},
		{name: "line item extras", modify: func(o *OrderInput) {
			o.Dishes = []any{map[string]any{"price": 2.5, "note": "no onions", "quantity": float64(1)}}
		}},
		{name: "missing deliverTo", modify: func(o *OrderInput) { o.DeliverTo = "" }, want: "Order must include a deliverTo"},
		{name: "missing mobileNumber", modify: func(o *OrderInput) { o.MobileNumber = nil }, want: "Order must include a mobileNumber"},
		{name: "missing dishes", modify: func(o *OrderInput) { o.Dishes = nil }, want: "Order must include a dish"},
		{name: "empty dishes", modify: func(o *OrderInput) { o.Dishes = []any{} }, want: "Order must include at least one dish"},
		{name: "dishes not a list", modify: func(o *OrderInput) { o.Dishes = "taco" }, want: "Order must include at least one dish"},
		{name: "zero quantity", modify: func(o *OrderInput) { o.Dishes = []any{line(float64(0))} }, want: "Dish 0 must have a quantity that is an integer greater than 0"},
		{name: "missing quantity", modify: func(o *OrderInput) { o.Dishes = []any{map[string]any{"id": "d1"}} }, want: "Dish 0 must have a quantity that is an integer greater than 0"},
		{name: "string quantity", modify: func(o *OrderInput) { o.Dishes = []any{line("2")} }, want: "Dish 0 must have a quantity that is an integer greater than 0"},
		{name: "line item not an object", modify: func(o *OrderInput) { o.Dishes = []any{"taco"} }, want: "Dish 0 must have a quantity that is an integer greater than 0"},
		{
			name: "last offending index wins",
			modify: func(o *OrderInput) {
				o.Dishes = []any{line(float64(-1)), line(float64(1)), line(2.5), line(float64(3))}
			},
			want: "Dish 2 must have a quantity that is an integer greater than 0",
		},
		{name: "status not checked on create", modify: func(o *OrderInput) { o.Status = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validOrder()
			tt.modify(&in)
			assertBadRequest(t, Order(in), tt.want)
		})
	}
}

func TestOrderUpdate(t *testing.T) {
	pending := models.Order{ID: "5", Status: models.StatusPending}
	delivered := models.Order{ID: "5", Status: models.StatusDelivered}
	const statusMsg = "Order must have a status of pending, preparing, out-for-delivery, delivered"

	tests := []struct {
		name    string
		current models.Order
		modify  func(*OrderInput)
		want    string
	}{
		{name: "valid", current: pending, modify: func(*OrderInput) {}},
		{name: "matching id", current: pending, modify: func(o *OrderInput) { o.ID = "5" }},
		{name: "numeric matching id", current: pending, modify: func(o *OrderInput) { o.ID = float64(5) }},
		{name: "mismatched id", current: pending, modify: func(o *OrderInput) { o.ID = "6" }, want: "Order id does not match route id. Order: 6, Route: 5"},
		{name: "id checked before status", current: pending, modify: func(o *OrderInput) { o.ID = "6"; o.Status = "bogus" }, want: "Order id does not match route id. Order: 6, Route: 5"},
		{name: "missing status", current: pending, modify: func(o *OrderInput) { o.Status = nil }, want: statusMsg},
		{name: "empty status", current: pending, modify: func(o *OrderInput) { o.Status = "" }, want: statusMsg},
		{name: "unknown status", current: pending, modify: func(o *OrderInput) { o.Status = "invalid" }, want: statusMsg},
		{name: "delivered status rejected by status set", current: pending, modify: func(o *OrderInput) { o.Status = "delivered" }, want: statusMsg},
		{name: "preparing", current: pending, modify: func(o *OrderInput) { o.Status = "preparing" }},
		{name: "out for delivery", current: pending, modify: func(o *OrderInput) { o.Status = "out-for-delivery" }},
		{name: "stored order delivered", current: delivered, modify: func(*OrderInput) {}, want: "A delivered order cannot be changed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validOrder()
			tt.modify(&in)
			assertBadRequest(t, OrderUpdate("5", tt.current, in), tt.want)
		})
	}
}

func TestOrderDelete(t *testing.T) {
	for _, s := range []models.OrderStatus{models.StatusPreparing, models.StatusOutForDelivery, models.StatusDelivered} {
		assertBadRequest(t, OrderDelete(models.Order{Status: s}), "An order cannot be deleted unless it is pending")
	}
	assertBadRequest(t, OrderDelete(models.Order{Status: models.StatusPending}), "")
}

func TestOrderInputConversion(t *testing.T) {
	in := validOrder()
	in.Dishes = []any{
		map[string]any{"id": float64(3), "name": "Taco", "price": float64(12), "image_url": "http://x", "quantity": float64(2)},
		map[string]any{"quantity": float64(1)},
	}
	o := in.Order()
	if o.DeliverTo != "308 Negra Arroyo Lane" || o.Status != models.StatusPending {
		t.Fatalf("unexpected order: %+v", o)
	}
	if len(o.Dishes) != 2 {
		t.Fatalf("got %d line items, want 2", len(o.Dishes))
	}
	want := models.LineItem{"id": float64(3), "name": "Taco", "price": float64(12), "image_url": "http://x", "quantity": float64(2)}
	if !reflect.DeepEqual(o.Dishes[0], want) {
		t.Errorf("line 0 = %v, want %v", o.Dishes[0], want)
	}
	if !reflect.DeepEqual(o.Dishes[1], models.LineItem{"quantity": float64(1)}) {
		t.Errorf("line 1 = %v", o.Dishes[1])
	}

	in.Status = nil
	if got := in.Order().Status; got != "" {
		t.Errorf("missing status converted to %q, want empty", got)
	}
}

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{float64(2), 2, true},
		{float64(3000000000), 3000000000, true},
		{int64(7), 7, true},
		{uint64(9), 9, true},
		{8, 8, true},
		{float64(0), 0, false},
		{2.5, 0, false},
		{1e19, 0, false},
		{int64(-1), 0, false},
		{uint64(0), 0, false},
		{"3", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := PositiveInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PositiveInt(%#v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOrderRecord(t *testing.T) {
	o := models.Order{
		DeliverTo:    "Home",
		MobileNumber: "555",
		Status:       models.StatusDelivered,
		Dishes:       []models.LineItem{{"quantity": uint64(2)}},
	}
	if err := OrderRecord(o); err != nil {
		t.Fatalf("delivered record: %v", err)
	}
	o.Status = "bogus"
	assertBadRequest(t, OrderRecord(o), "Order must have a status of pending, preparing, out-for-delivery, delivered")

	o.Status = models.StatusPending
	o.Dishes = []models.LineItem{{"quantity": uint64(1)}, {"quantity": int64(-2)}}
	assertBadRequest(t, OrderRecord(o), "Dish 1 must have a quantity that is an integer greater than 0")
}
