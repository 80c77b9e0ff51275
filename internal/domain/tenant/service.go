package tenant

import (
	"context"
	"strings"

	"github.com/QuangTrungK15/motel-management/internal/domain/identity"
)

type Service struct {
	repo     Repository
	registry *identity.Service
}

func NewService(repo Repository, registry *identity.Service) *Service {
	return &Service{repo: repo, registry: registry}
}

func (s *Service) List(ctx context.Context, search string) ([]ListItem, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Tenant, error) {
	record, err := buildTenant(input)
	if err != nil {
		return nil, err
	}

	if record.IDNumber != "" {
		holder, err := s.registry.FindDuplicate(ctx, record.IDNumber, identity.Exclusions{})
		if err != nil {
			return nil, err
		}
		if holder != nil {
			return nil, &identity.DuplicateIDError{IDNumber: record.IDNumber, Holder: holder.Describe()}
		}
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Tenant, error) {
	record, err := buildTenant(input.CreateInput)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if record.IDNumber != "" {
		holder, err := s.registry.FindDuplicate(ctx, record.IDNumber, identity.Exclusions{TenantID: existing.ID})
		if err != nil {
			return nil, err
		}
		if holder != nil {
			return nil, &identity.DuplicateIDError{IDNumber: record.IDNumber, Holder: holder.Describe()}
		}
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a tenant and everything hanging off their ended contracts:
// occupants, payments, then the contracts themselves, in one transaction.
// A tenant with an active contract cannot be deleted.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetByID(ctx, id); err != nil {
			return err
		}

		active, err := tx.CountActiveContracts(ctx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrTenantHasActiveContracts
		}

		contractIDs, err := tx.ListContractIDs(ctx, id)
		if err != nil {
			return err
		}

		if len(contractIDs) > 0 {
			if err := tx.DeleteOccupantsByContracts(ctx, contractIDs); err != nil {
				return err
			}
			if err := tx.DeletePaymentsByContracts(ctx, contractIDs); err != nil {
				return err
			}
			if err := tx.DeleteContractsByTenant(ctx, id); err != nil {
				return err
			}
		}

		return tx.Delete(ctx, id)
	})
}

func buildTenant(input CreateInput) (*Tenant, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}

	return &Tenant{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		IDType:    strings.TrimSpace(input.IDType),
		IDNumber:  strings.TrimSpace(input.IDNumber),
		Notes:     strings.TrimSpace(input.Notes),
	}, nil
}
