package services

import (
	"fmt"

	"github.com/krustykrab/restaurant-api/internal/models"
)

// OrderTotal computes the derived total price for an order: the sum of each
// referenced menu item's price multiplied by its requested quantity. The
// names and quantities slices are parallel and must already be equal length.
//
// Every name must be present in the resolved item map. A missing name is an
// error rather than a zero-priced line: the resolver gates before pricing,
// so a miss here means the caller skipped resolution.
func OrderTotal(items map[string]models.MenuItem, names []string, quantities []int) (float64, error) {
	if len(names) != len(quantities) {
		return 0, fmt.Errorf("menuItemIDs and quantity must have the same length: %d != %d", len(names), len(quantities))
	}

	var total float64
	for i, name := range names {
		item, ok := items[name]
		if !ok {
			return 0, fmt.Errorf("no resolved price for menu item %q", name)
		}
		total += item.Price * float64(quantities[i])
	}
	return total, nil
}
