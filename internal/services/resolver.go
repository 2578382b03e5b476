package services

import (
	"errors"

	"github.com/krustykrab/restaurant-api/internal/models"
	"gorm.io/gorm"
)

// ReferenceResolver maps the business keys carried by an order (customerID,
// menu item names) to live entities. It performs reads only.
type ReferenceResolver interface {
	// ResolveCustomer returns the customer with the given business key, or
	// UnknownCustomerError if none exists.
	ResolveCustomer(customerID int) (*models.Customer, error)
	// ResolveMenuItems resolves every name to its menu item, keyed by name.
	// Duplicate names resolve to the same entity. If any names are missing,
	// it returns UnknownMenuItemsError listing all of them together.
	ResolveMenuItems(names []string) (map[string]models.MenuItem, error)
}

type referenceResolver struct {
	db *gorm.DB
}

// NewReferenceResolver creates a resolver backed by the given store handle.
func NewReferenceResolver(db *gorm.DB) ReferenceResolver {
	return &referenceResolver{db: db}
}

func (r *referenceResolver) ResolveCustomer(customerID int) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &UnknownCustomerError{CustomerID: customerID}
		}
		return nil, err
	}
	return &customer, nil
}

func (r *referenceResolver) ResolveMenuItems(names []string) (map[string]models.MenuItem, error) {
	resolved := make(map[string]models.MenuItem, len(names))
	if len(names) == 0 {
		return resolved, nil
	}

	var items []models.MenuItem
	if err := r.db.Where("name IN ?", names).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		resolved[item.Name] = item
	}

	// Collect misses in first-occurrence order, each name reported once.
	var missing []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := resolved[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &UnknownMenuItemsError{Names: missing}
	}

	return resolved, nil
}
