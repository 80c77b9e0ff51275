package identity

import (
	"context"
	"strings"
)

// Service answers "is this id number already claimed by any tenant or
// occupant?". It is a point-in-time check, not a transactional constraint:
// the partial unique indexes on the tenant and occupant tables are the
// commit-time backstop.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FindDuplicate returns the holder of idNumber, or nil when it is free.
// Blank id numbers are always free: identification is optional. Tenants are
// searched before occupants, so a tenant match wins when both exist.
func (s *Service) FindDuplicate(ctx context.Context, idNumber string, exclude Exclusions) (*Holder, error) {
	idNumber = strings.TrimSpace(idNumber)
	if idNumber == "" {
		return nil, nil
	}

	holder, err := s.repo.FindTenant(ctx, idNumber, exclude.TenantID)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return holder, nil
	}

	return s.repo.FindOccupant(ctx, idNumber, exclude.OccupantIDs)
}
