package services

import (
	"errors"
	"testing"

	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResolveCustomer(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewReferenceResolver(db)

	customer := models.Customer{CustomerID: 201, Name: "Squidward Tentacles", ContactInfo: "555-0100"}
	require.NoError(t, db.Create(&customer).Error)

	resolved, err := resolver.ResolveCustomer(201)
	require.NoError(t, err)
	assert.Equal(t, "Squidward Tentacles", resolved.Name)
}

func TestResolveCustomerUnknown(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewReferenceResolver(db)

	_, err := resolver.ResolveCustomer(999)
	require.Error(t, err)

	var unknownCustomer *UnknownCustomerError
	require.True(t, errors.As(err, &unknownCustomer))
	assert.Equal(t, 999, unknownCustomer.CustomerID)
}

func TestResolveMenuItems(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewReferenceResolver(db)
	seedMenuItems(t, db)

	items, err := resolver.ResolveMenuItems([]string{"Krabby Patty", "Kelp Fries"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 5.99, items["Krabby Patty"].Price)
	assert.Equal(t, 2.99, items["Kelp Fries"].Price)
}

func TestResolveMenuItemsDuplicateNames(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewReferenceResolver(db)
	seedMenuItems(t, db)

	items, err := resolver.ResolveMenuItems([]string{"Krabby Patty", "Krabby Patty"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestResolveMenuItemsEmpty(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewReferenceResolver(db)

	items, err := resolver.ResolveMenuItems(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResolveMenuItemsReportsAllMisses(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewReferenceResolver(db)
	seedMenuItems(t, db)

	// Every unresolvable name appears in the error, in first-occurrence
	// order, with no duplicates.
	_, err := resolver.ResolveMenuItems([]string{"Chum Burger", "Krabby Patty", "Nasty Patty", "Chum Burger"})
	require.Error(t, err)

	var unknownItems *UnknownMenuItemsError
	require.True(t, errors.As(err, &unknownItems))
	assert.Equal(t, []string{"Chum Burger", "Nasty Patty"}, unknownItems.Names)
}

func seedMenuItems(t *testing.T, db *gorm.DB) {
	t.Helper()

	items := []models.MenuItem{
		{Name: "Krabby Patty", Description: "The signature burger", Price: 5.99, Ingredients: []string{"bun", "patty", "lettuce", "cheese"}},
		{Name: "Kelp Fries", Description: "Crispy fries made from kelp", Price: 2.99, Ingredients: []string{"kelp", "salt"}},
		{Name: "Coral Bits", Description: "Crunchy coral snack", Price: 1.99, Ingredients: []string{"coral"}},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
}
