// Package validation holds the request checks run before a handler touches
// a repository. Every check is a pure function returning nil or an
// *apperror.Error describing the first problem found.
package validation

import (
	"restaurant-orders-api/apperror"
	"restaurant-orders-api/models"
)

// Dish checks that every dish field is present, stopping at the first miss.
func Dish(in DishInput) error {
	switch {
	case !isText(in.Name):
		return apperror.BadRequest("Dish must include a name")
	case !isText(in.Description):
		return apperror.BadRequest("Dish must include a description")
	case !present(in.Price):
		return apperror.BadRequest("Dish must include a price")
	case !isPositiveInt(in.Price):
		return apperror.BadRequest("Dish must have a price that is an integer greater than 0")
	case !isText(in.ImageURL):
		return apperror.BadRequest("Dish must include a image_url")
	}
	return nil
}

// DishRecord applies the dish field rules to an already decoded dish, such
// as one read from a seed file.
func DishRecord(d models.Dish) error {
	return Dish(DishInput{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	})
}

// DishMatchesRoute rejects a body id that names a different dish than the route.
func DishMatchesRoute(routeID string, bodyID any) error {
	id, ok := ID(bodyID)
	if ok && id != routeID {
		return apperror.BadRequest("Dish id does not match route id. Dish: %s, Route: %s", id, routeID)
	}
	return nil
}

func isText(v any) bool {
	_, ok := Text(v)
	return ok
}

func isPositiveInt(v any) bool {
	_, ok := PositiveInt(v)
	return ok
}
