package services

import (
	"errors"
	"testing"
	"time"

	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Customer{}, &models.MenuItem{}, &models.Order{})
	require.NoError(t, err)

	return db
}

func setupOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	seedMenuItems(t, db)
	customer := models.Customer{CustomerID: 201, Name: "Squidward Tentacles", ContactInfo: "555-0100"}
	require.NoError(t, db.Create(&customer).Error)

	return NewOrderService(db, NewReferenceResolver(db)), db
}

func TestCreateOrder(t *testing.T) {
	service, _ := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty", "Kelp Fries"},
		Quantity:    []int{2, 1},
		Date:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 301, order.OrderID)
	assert.InDelta(t, 14.97, order.TotalPrice, 0.0001)
}

func TestCreateOrderIgnoresClientTotal(t *testing.T) {
	service, db := setupOrderService(t)

	// There is no way to submit a total: the request type carries none,
	// and the stored value always comes from the pricing computation.
	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Coral Bits"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.99, order.TotalPrice, 0.0001)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.InDelta(t, 1.99, stored.TotalPrice, 0.0001)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	service, _ := setupOrderService(t)

	_, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  999,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.Error(t, err)

	var unknownCustomer *UnknownCustomerError
	assert.True(t, errors.As(err, &unknownCustomer))
}

func TestCreateOrderUnknownMenuItems(t *testing.T) {
	service, db := setupOrderService(t)

	_, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty", "Chum Burger", "Nasty Patty"},
		Quantity:    []int{1, 1, 1},
		Date:        time.Now(),
	})
	require.Error(t, err)

	var unknownItems *UnknownMenuItemsError
	require.True(t, errors.As(err, &unknownItems))
	assert.Equal(t, []string{"Chum Burger", "Nasty Patty"}, unknownItems.Names)

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderShapeValidation(t *testing.T) {
	service, _ := setupOrderService(t)

	tests := []struct {
		name string
		req  CreateOrderRequest
	}{
		{
			name: "missing orderID",
			req: CreateOrderRequest{
				CustomerID:  201,
				MenuItemIDs: []string{"Krabby Patty"},
				Quantity:    []int{1},
			},
		},
		{
			name: "missing customerID",
			req: CreateOrderRequest{
				OrderID:     301,
				MenuItemIDs: []string{"Krabby Patty"},
				Quantity:    []int{1},
			},
		},
		{
			name: "nil menuItemIDs",
			req: CreateOrderRequest{
				OrderID:    301,
				CustomerID: 201,
				Quantity:   []int{1},
			},
		},
		{
			name: "length mismatch",
			req: CreateOrderRequest{
				OrderID:     301,
				CustomerID:  201,
				MenuItemIDs: []string{"Krabby Patty", "Kelp Fries"},
				Quantity:    []int{1},
			},
		},
		{
			name: "zero quantity",
			req: CreateOrderRequest{
				OrderID:     301,
				CustomerID:  201,
				MenuItemIDs: []string{"Krabby Patty"},
				Quantity:    []int{0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOrder(tt.req)
			require.Error(t, err)

			var malformed *MalformedOrderError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestCreateOrderDuplicateOrderID(t *testing.T) {
	service, _ := setupOrderService(t)

	req := CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	}
	_, err := service.CreateOrder(req)
	require.NoError(t, err)

	_, err = service.CreateOrder(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUpdateOrderDateOnlyKeepsTotal(t *testing.T) {
	service, db := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty", "Kelp Fries"},
		Quantity:    []int{2, 1},
		Date:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Move the menu price after the fact. A date-only patch must not pick
	// it up: totals are priced at write time of the order lines.
	require.NoError(t, db.Model(&models.MenuItem{}).Where("name = ?", "Krabby Patty").Update("price", 7.99).Error)

	newDate := time.Date(2024, 4, 1, 18, 30, 0, 0, time.UTC)
	updated, err := service.UpdateOrder(order.ID, UpdateOrderRequest{Date: &newDate})
	require.NoError(t, err)

	assert.True(t, updated.Date.Equal(newDate))
	assert.InDelta(t, 14.97, updated.TotalPrice, 0.0001)
}

func TestUpdateOrderQuantityReprices(t *testing.T) {
	service, db := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)
	require.InDelta(t, 5.99, order.TotalPrice, 0.0001)

	// A quantity patch reprices against current menu prices, including
	// changes made since the order was created.
	require.NoError(t, db.Model(&models.MenuItem{}).Where("name = ?", "Krabby Patty").Update("price", 7.99).Error)

	quantity := []int{3}
	updated, err := service.UpdateOrder(order.ID, UpdateOrderRequest{Quantity: &quantity})
	require.NoError(t, err)
	assert.InDelta(t, 23.97, updated.TotalPrice, 0.0001)
}

func TestUpdateOrderItemsReprice(t *testing.T) {
	service, _ := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)

	items := []string{"Kelp Fries", "Coral Bits"}
	quantity := []int{2, 2}
	updated, err := service.UpdateOrder(order.ID, UpdateOrderRequest{MenuItemIDs: &items, Quantity: &quantity})
	require.NoError(t, err)
	assert.InDelta(t, 9.96, updated.TotalPrice, 0.0001)
}

func TestUpdateOrderValidatesMergedShape(t *testing.T) {
	service, _ := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)

	// Patching only the item list leaves the stored single-element
	// quantity array; the merged order has mismatched lengths.
	items := []string{"Krabby Patty", "Kelp Fries"}
	_, err = service.UpdateOrder(order.ID, UpdateOrderRequest{MenuItemIDs: &items})
	require.Error(t, err)

	var malformed *MalformedOrderError
	assert.True(t, errors.As(err, &malformed))
}

func TestUpdateOrderUnknownCustomer(t *testing.T) {
	service, _ := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)

	badCustomer := 999
	_, err = service.UpdateOrder(order.ID, UpdateOrderRequest{CustomerID: &badCustomer})
	require.Error(t, err)

	var unknownCustomer *UnknownCustomerError
	assert.True(t, errors.As(err, &unknownCustomer))
}

func TestUpdateOrderNotFound(t *testing.T) {
	service, _ := setupOrderService(t)

	newDate := time.Now()
	_, err := service.UpdateOrder(12345, UpdateOrderRequest{Date: &newDate})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteOrder(t *testing.T) {
	service, _ := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteOrder(order.ID))

	_, err = service.GetOrderByID(order.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteOrderNotFound(t *testing.T) {
	service, _ := setupOrderService(t)

	err := service.DeleteOrder(12345)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCustomerLeavesOrders(t *testing.T) {
	service, db := setupOrderService(t)

	order, err := service.CreateOrder(CreateOrderRequest{
		OrderID:     301,
		CustomerID:  201,
		MenuItemIDs: []string{"Krabby Patty"},
		Quantity:    []int{1},
		Date:        time.Now(),
	})
	require.NoError(t, err)

	// Deleting the referenced customer does not cascade; the order stays
	// with a now-dangling reference.
	require.NoError(t, db.Where("customer_id = ?", 201).Delete(&models.Customer{}).Error)

	stored, err := service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 201, stored.CustomerID)
}
