package utility

import (
	"context"

	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/settings"
)

type Repository interface {
	// Upsert creates or fully overwrites the row keyed by (RoomID, Month).
	Upsert(ctx context.Context, record *Utility) error
	// CreateIfAbsent inserts the row only when no record exists for its
	// (RoomID, Month); reports whether a row was created.
	CreateIfAbsent(ctx context.Context, record *Utility) (bool, error)
	ListByMonth(ctx context.Context, month string) ([]Utility, error)
	ListRooms(ctx context.Context) ([]room.Room, error)
}

// RatesProvider supplies the default utility rates; implemented by the
// settings service.
type RatesProvider interface {
	Rates(ctx context.Context) (settings.Rates, error)
}
