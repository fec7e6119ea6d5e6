package cart

import "context"

// Store keeps each user's cart as an ordered list of product ids.
// Duplicate ids are allowed and stand for quantity. Ids are not checked
// against the catalog on write; unknown ids are dropped when the cart is
// materialized.
type Store interface {
	// Add appends productID to the user's cart, creating it if absent.
	Add(ctx context.Context, userID string, productID int) error
	// RemoveAll deletes every occurrence of productID. No-op if the user
	// has no cart.
	RemoveAll(ctx context.Context, userID string, productID int) error
	// List returns the cart contents in insertion order, empty if none.
	List(ctx context.Context, userID string) ([]int, error)
	Ping(ctx context.Context) error
}
