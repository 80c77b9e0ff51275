package contract

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/QuangTrungK15/motel-management/internal/domain/identity"
	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/tenant"
)

// Service owns the room↔contract state machine: a room has at most one
// active contract, and an active contract's headcount never exceeds the
// room's capacity. Move-in and move-out are the only writers of the
// vacant/occupied room states.
type Service struct {
	repo     Repository
	registry *identity.Service
	now      func() time.Time
}

func NewService(repo Repository, registry *identity.Service) *Service {
	return &Service{repo: repo, registry: registry, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Contract, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Contract, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListVacantRooms(ctx context.Context) ([]room.Room, error) {
	return s.repo.ListVacantRooms(ctx)
}

func (s *Service) ListTenantsWithoutActiveContract(ctx context.Context) ([]tenant.Tenant, error) {
	return s.repo.ListTenantsWithoutActiveContract(ctx)
}

// MoveIn validates and executes a move-in as one transaction: create the
// contract with its occupant batch, then flip the room to occupied. The
// checks run in a fixed order and the first failure wins; nothing is written
// until every check has passed.
func (s *Service) MoveIn(ctx context.Context, input MoveInInput) (*Contract, error) {
	occupants := normalizeOccupants(input.Occupants)

	var created Contract
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		rm, err := tx.GetRoom(ctx, input.RoomID)
		if err != nil {
			return err
		}

		headcount := 1 + len(occupants)
		if headcount > rm.MaxOccupants {
			return &MaxOccupantsError{Max: rm.MaxOccupants, Rest: rm.MaxOccupants - 1}
		}

		seen := make(map[string]struct{}, len(occupants))
		for _, occ := range occupants {
			if occ.IDNumber == "" {
				continue
			}
			if _, dup := seen[occ.IDNumber]; dup {
				return ErrDuplicateOccupantIDs
			}
			seen[occ.IDNumber] = struct{}{}
		}

		for _, occ := range occupants {
			if occ.IDNumber == "" {
				continue
			}
			holder, err := s.registry.FindDuplicate(ctx, occ.IDNumber, identity.Exclusions{})
			if err != nil {
				return err
			}
			if holder != nil {
				return &identity.DuplicateIDError{IDNumber: occ.IDNumber, Holder: holder.Describe()}
			}
		}

		record := Contract{
			RoomID:      input.RoomID,
			TenantID:    input.TenantID,
			MonthlyRent: input.MonthlyRent,
			Deposit:     input.Deposit,
			StartDate:   input.StartDate,
			Status:      StatusActive,
			Notes:       strings.TrimSpace(input.Notes),
			Occupants:   occupants,
		}
		if err := tx.Create(ctx, &record); err != nil {
			return err
		}

		if err := tx.UpdateRoomStatus(ctx, input.RoomID, room.StatusOccupied); err != nil {
			return err
		}

		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// MoveOut ends the contract and frees its room in one transaction. A missing
// or already-ended contract is a silent no-op, so double submissions are
// harmless. Occupants and payments of the ended contract are kept as history.
func (s *Service) MoveOut(ctx context.Context, contractID uint) error {
	record, err := s.repo.GetByID(ctx, contractID)
	if errors.Is(err, ErrContractNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if record.Status == StatusEnded {
		return nil
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.End(ctx, record.ID, s.now().UTC()); err != nil {
			return err
		}
		return tx.UpdateRoomStatus(ctx, record.RoomID, room.StatusVacant)
	})
}

func normalizeOccupants(inputs []OccupantInput) []Occupant {
	occupants := make([]Occupant, 0, len(inputs))
	for _, in := range inputs {
		firstName := strings.TrimSpace(in.FirstName)
		lastName := strings.TrimSpace(in.LastName)
		if firstName == "" || lastName == "" {
			continue
		}
		occupants = append(occupants, Occupant{
			FirstName:    firstName,
			LastName:     lastName,
			Phone:        strings.TrimSpace(in.Phone),
			IDNumber:     strings.TrimSpace(in.IDNumber),
			IDType:       strings.TrimSpace(in.IDType),
			Relationship: strings.TrimSpace(in.Relationship),
		})
	}
	return occupants
}
