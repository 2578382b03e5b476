package services

import (
	"fmt"
	"strings"
)

// MalformedOrderError reports a shape violation in an order mutation
// (missing fields, mismatched array lengths, non-positive quantities).
type MalformedOrderError struct {
	Reason string
}

func (e *MalformedOrderError) Error() string {
	return e.Reason
}

// UnknownCustomerError reports a customerID that resolves to no customer.
type UnknownCustomerError struct {
	CustomerID int
}

func (e *UnknownCustomerError) Error() string {
	return fmt.Sprintf("customer with customerID %d does not exist", e.CustomerID)
}

// UnknownMenuItemsError reports every menu item name that failed to resolve.
// All misses are collected before the error is returned so the caller sees
// the full list, not just the first.
type UnknownMenuItemsError struct {
	Names []string
}

func (e *UnknownMenuItemsError) Error() string {
	return fmt.Sprintf("menu items do not exist: %s", strings.Join(e.Names, ", "))
}
