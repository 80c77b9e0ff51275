package payment

import (
	"context"
	"time"
)

type Repository interface {
	ListActiveContracts(ctx context.Context) ([]ActiveContract, error)
	HasRentPayment(ctx context.Context, contractID uint, month string) (bool, error)
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	UpdateStatus(ctx context.Context, id uint, status Status, paidAt *time.Time) error
	Delete(ctx context.Context, id uint) (bool, error)
	ListByMonth(ctx context.Context, month string) ([]Details, error)
}
