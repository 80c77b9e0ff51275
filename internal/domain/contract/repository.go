package contract

import (
	"context"
	"time"

	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/tenant"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id uint) (*Contract, error)
	// List returns all contracts with room, tenant and occupants preloaded,
	// active first, newest start date first.
	List(ctx context.Context) ([]Contract, error)
	// Create persists the contract together with its occupant batch.
	Create(ctx context.Context, contract *Contract) error
	// End marks the contract ended and stamps the end date.
	End(ctx context.Context, id uint, endedAt time.Time) error
	GetRoom(ctx context.Context, roomID uint) (*room.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID uint, status room.Status) error
	// Move-in candidates for the presentation layer.
	ListVacantRooms(ctx context.Context) ([]room.Room, error)
	ListTenantsWithoutActiveContract(ctx context.Context) ([]tenant.Tenant, error)
}
