package services

import (
	"time"

	"github.com/krustykrab/restaurant-api/internal/models"
	"gorm.io/gorm"
)

// CreateOrderRequest is the inbound payload for creating an order.
// TotalPrice is deliberately absent: it is always computed server-side.
type CreateOrderRequest struct {
	OrderID     int       `json:"orderID"`
	CustomerID  int       `json:"customerID"`
	MenuItemIDs []string  `json:"menuItemIDs"`
	Quantity    []int     `json:"quantity"`
	Date        time.Time `json:"date"`
}

// UpdateOrderRequest is a partial update. Pointer fields distinguish "not
// provided, keep the stored value" from an explicit zero value.
type UpdateOrderRequest struct {
	CustomerID  *int       `json:"customerID"`
	MenuItemIDs *[]string  `json:"menuItemIDs"`
	Quantity    *[]int     `json:"quantity"`
	Date        *time.Time `json:"date"`
}

// OrderService orchestrates order mutations: shape validation, reference
// resolution, pricing, and persistence, in that order. The first failing
// gate aborts the request; nothing is written on failure.
type OrderService interface {
	GetAllOrders() ([]models.Order, error)
	// GetOrderByID fetches an order by its storage identifier.
	GetOrderByID(id int) (models.Order, error)
	// CreateOrder runs the full validation pipeline and inserts the order
	// with a freshly computed TotalPrice. A duplicate OrderID surfaces as
	// gorm.ErrDuplicatedKey from the store's unique index.
	CreateOrder(req CreateOrderRequest) (models.Order, error)
	// UpdateOrder merges the patch over the stored order and re-runs the
	// resolution and pricing gates when customerID, menuItemIDs, or
	// quantity is being changed. A patch touching none of those leaves
	// TotalPrice exactly as stored, even if menu prices moved since.
	UpdateOrder(id int, req UpdateOrderRequest) (models.Order, error)
	// DeleteOrder removes the order unconditionally; no cascade effects.
	DeleteOrder(id int) error
}

type orderService struct {
	db       *gorm.DB
	resolver ReferenceResolver
}

// NewOrderService creates an OrderService using the given store handle and
// resolver.
func NewOrderService(db *gorm.DB, resolver ReferenceResolver) OrderService {
	return &orderService{db: db, resolver: resolver}
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id int) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) CreateOrder(req CreateOrderRequest) (models.Order, error) {
	if err := validateOrderShape(req.OrderID, req.CustomerID, req.MenuItemIDs, req.Quantity); err != nil {
		return models.Order{}, err
	}

	totalPrice, err := s.resolveAndPrice(req.CustomerID, req.MenuItemIDs, req.Quantity)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		OrderID:     req.OrderID,
		CustomerID:  req.CustomerID,
		MenuItemIDs: req.MenuItemIDs,
		Quantity:    req.Quantity,
		TotalPrice:  totalPrice,
		Date:        req.Date,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) UpdateOrder(id int, req UpdateOrderRequest) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, err
	}

	// Merge the patch over the stored values before validating, so the
	// gates always see the full effective order.
	related := req.CustomerID != nil || req.MenuItemIDs != nil || req.Quantity != nil
	if req.CustomerID != nil {
		order.CustomerID = *req.CustomerID
	}
	if req.MenuItemIDs != nil {
		order.MenuItemIDs = *req.MenuItemIDs
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.Date != nil {
		order.Date = *req.Date
	}

	if related {
		if err := validateOrderShape(order.OrderID, order.CustomerID, order.MenuItemIDs, order.Quantity); err != nil {
			return models.Order{}, err
		}
		totalPrice, err := s.resolveAndPrice(order.CustomerID, order.MenuItemIDs, order.Quantity)
		if err != nil {
			return models.Order{}, err
		}
		order.TotalPrice = totalPrice
	}

	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id int) error {
	result := s.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// resolveAndPrice runs the resolution and pricing gates. The resolver reads
// are not transactionally joined with the caller's write; a reference
// deleted in between is an accepted race.
func (s *orderService) resolveAndPrice(customerID int, names []string, quantities []int) (float64, error) {
	if _, err := s.resolver.ResolveCustomer(customerID); err != nil {
		return 0, err
	}
	items, err := s.resolver.ResolveMenuItems(names)
	if err != nil {
		return 0, err
	}
	return OrderTotal(items, names, quantities)
}

func validateOrderShape(orderID, customerID int, names []string, quantities []int) error {
	if orderID <= 0 {
		return &MalformedOrderError{Reason: "orderID is required and must be positive"}
	}
	if customerID <= 0 {
		return &MalformedOrderError{Reason: "customerID is required and must be positive"}
	}
	if names == nil || quantities == nil {
		return &MalformedOrderError{Reason: "menuItemIDs and quantity are required"}
	}
	if len(names) != len(quantities) {
		return &MalformedOrderError{Reason: "menuItemIDs and quantity arrays must have the same length"}
	}
	for _, q := range quantities {
		if q < 1 {
			return &MalformedOrderError{Reason: "every quantity must be at least 1"}
		}
	}
	return nil
}
