package validation

import (
	"restaurant-orders-api/apperror"
	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"
)

// Order checks the order fields. Contact fields and the dish list stop at
// the first miss; line items are all inspected and the last bad quantity
// names the reported index.
func Order(in OrderInput) error {
	switch {
	case !isText(in.DeliverTo):
		return apperror.BadRequest("Order must include a deliverTo")
	case !isText(in.MobileNumber):
		return apperror.BadRequest("Order must include a mobileNumber")
	case in.Dishes == nil:
		return apperror.BadRequest("Order must include a dish")
	}

	items, ok := in.Dishes.([]any)
	if !ok || len(items) == 0 {
		return apperror.BadRequest("Order must include at least one dish")
	}

	var err error
	for i, item := range items {
		fields, _ := item.(map[string]any)
		if !isPositiveInt(fields["quantity"]) {
			err = apperror.BadRequest("Dish %d must have a quantity that is an integer greater than 0", i)
		}
	}
	return err
}

// OrderRecord applies the order field rules to an already decoded order and
// requires a lifecycle status. Records from a seed file go through it.
func OrderRecord(o models.Order) error {
	in := OrderInput{
		ID:           o.ID,
		DeliverTo:    o.DeliverTo,
		MobileNumber: o.MobileNumber,
		Status:       string(o.Status),
	}
	if o.Dishes != nil {
		items := make([]any, len(o.Dishes))
		for i, l := range o.Dishes {
			if l != nil {
				items[i] = map[string]any(l)
			}
		}
		in.Dishes = items
	}
	if err := Order(in); err != nil {
		return err
	}
	if !statemachine.Known(o.Status) {
		return apperror.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered")
	}
	return nil
}

// OrderUpdate checks an update of current against the route id and the
// status rules. The first failing rule is reported.
func OrderUpdate(routeID string, current models.Order, in OrderInput) error {
	status, _ := Text(in.Status)
	next := models.OrderStatus(status)

	if id, ok := ID(in.ID); ok && id != routeID {
		return apperror.BadRequest("Order id does not match route id. Order: %s, Route: %s", id, routeID)
	}
	if !statemachine.Assignable(next) {
		return apperror.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered")
	}
	if next == models.StatusDelivered || !statemachine.Mutable(current.Status) {
		return apperror.BadRequest("A delivered order cannot be changed")
	}
	return nil
}

// OrderDelete allows removal of pending orders only.
func OrderDelete(current models.Order) error {
	if !statemachine.Deletable(current.Status) {
		return apperror.BadRequest("An order cannot be deleted unless it is pending")
	}
	return nil
}
