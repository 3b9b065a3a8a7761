package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same ID is already stored.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrMissingFields indicates a create request without a usable name and description.
	ErrMissingFields = errors.New("missing required fields")
)
