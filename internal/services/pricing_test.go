package services

import (
	"testing"

	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuFixture() map[string]models.MenuItem {
	return map[string]models.MenuItem{
		"Krabby Patty": {Name: "Krabby Patty", Price: 5.99},
		"Kelp Fries":   {Name: "Kelp Fries", Price: 2.99},
		"Coral Bits":   {Name: "Coral Bits", Price: 1.99},
	}
}

func TestOrderTotal(t *testing.T) {
	items := menuFixture()

	total, err := OrderTotal(items, []string{"Krabby Patty", "Kelp Fries"}, []int{2, 1})
	require.NoError(t, err)
	assert.InDelta(t, 14.97, total, 0.0001)
}

func TestOrderTotalSingleItem(t *testing.T) {
	items := menuFixture()

	total, err := OrderTotal(items, []string{"Coral Bits"}, []int{3})
	require.NoError(t, err)
	assert.InDelta(t, 5.97, total, 0.0001)
}

func TestOrderTotalDuplicateNames(t *testing.T) {
	items := menuFixture()

	// The same item may appear in multiple lines; each line prices
	// independently.
	total, err := OrderTotal(items, []string{"Kelp Fries", "Kelp Fries"}, []int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 8.97, total, 0.0001)
}

func TestOrderTotalEmptyOrder(t *testing.T) {
	total, err := OrderTotal(menuFixture(), []string{}, []int{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestOrderTotalLengthMismatch(t *testing.T) {
	_, err := OrderTotal(menuFixture(), []string{"Krabby Patty", "Kelp Fries"}, []int{2})
	assert.Error(t, err)
}

func TestOrderTotalUnresolvedName(t *testing.T) {
	// A name absent from the resolved map must fail the computation, never
	// price as zero.
	_, err := OrderTotal(menuFixture(), []string{"Chum Burger"}, []int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Chum Burger")
}
