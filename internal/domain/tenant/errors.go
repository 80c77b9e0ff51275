package tenant

import "errors"

var (
	ErrTenantNotFound           = errors.New("tenant not found")
	ErrTenantHasActiveContracts = errors.New("tenant has active contracts")
	ErrNameRequired             = errors.New("first and last name are required")
)
