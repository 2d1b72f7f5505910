// Package session holds the per-user shopping cart state. The cart lives for
// the lifetime of the server process, not the database: entries are desired
// quantities keyed by user then product, and a quantity only becomes durable
// when checkout snapshots it into an order.
package session

// Store is the cart namespace shared by all users. Implementations must keep
// users isolated: operations on one user's entries never touch another's.
type Store interface {
	// Set replaces the quantity for (userID, productID). Quantity must be
	// positive; use Delete to remove an entry.
	Set(userID, productID uint, quantity int) error

	// Delete removes the (userID, productID) entry. Deleting a missing entry
	// is not an error.
	Delete(userID, productID uint) error

	// Entries returns a copy of the user's productID -> quantity mapping.
	Entries(userID uint) (map[uint]int, error)

	// ClearUser removes every entry belonging to userID.
	ClearUser(userID uint) error
}
