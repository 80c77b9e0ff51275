package tenant

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context, search string) ([]ListItem, error)
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	Create(ctx context.Context, tenant *Tenant) error
	Update(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uint) error
	CountActiveContracts(ctx context.Context, tenantID uint) (int64, error)
	ListContractIDs(ctx context.Context, tenantID uint) ([]uint, error)
	DeleteOccupantsByContracts(ctx context.Context, contractIDs []uint) error
	DeletePaymentsByContracts(ctx context.Context, contractIDs []uint) error
	DeleteContractsByTenant(ctx context.Context, tenantID uint) error
}
