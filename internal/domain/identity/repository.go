package identity

import "context"

type Repository interface {
	// FindTenant returns the first tenant holding idNumber, skipping
	// excludeID when non-zero. A nil holder means no match.
	FindTenant(ctx context.Context, idNumber string, excludeID uint) (*Holder, error)
	// FindOccupant returns the first occupant holding idNumber, skipping the
	// given occupant ids.
	FindOccupant(ctx context.Context, idNumber string, excludeIDs []uint) (*Holder, error)
}
