package payment

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GenerateRentForMonth creates one pending rent payment per active contract
// for the given month, skipping contracts that already have one. Re-invoking
// only fills gaps; existing rows are never touched. Returns the number of
// payments created.
func (s *Service) GenerateRentForMonth(ctx context.Context, month string) (int, error) {
	if err := ValidateMonth(month); err != nil {
		return 0, err
	}

	contracts, err := s.repo.ListActiveContracts(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, c := range contracts {
		exists, err := s.repo.HasRentPayment(ctx, c.ContractID, month)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		record := Payment{
			ContractID: c.ContractID,
			Amount:     c.MonthlyRent,
			Month:      month,
			Type:       TypeRent,
			Method:     MethodCash,
			Status:     StatusPending,
		}
		if err := s.repo.Create(ctx, &record); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// SetStatus toggles a payment between paid and pending, stamping or clearing
// the paid-at timestamp. No room or contract state is touched.
func (s *Service) SetStatus(ctx context.Context, id uint, paid bool) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if paid {
		paidAt := s.now().UTC()
		return s.repo.UpdateStatus(ctx, id, StatusPaid, &paidAt)
	}
	return s.repo.UpdateStatus(ctx, id, StatusPending, nil)
}

func (s *Service) Add(ctx context.Context, input AddInput) (*Payment, error) {
	if err := ValidateMonth(input.Month); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("invalid payment type %q", input.Type)
	}
	if !input.Method.Valid() {
		return nil, fmt.Errorf("invalid payment method %q", input.Method)
	}
	if input.Status != StatusPaid && input.Status != StatusPending {
		return nil, fmt.Errorf("invalid payment status %q", input.Status)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	record := Payment{
		ContractID: input.ContractID,
		Amount:     input.Amount,
		Month:      input.Month,
		Type:       input.Type,
		Method:     input.Method,
		Status:     input.Status,
		Notes:      strings.TrimSpace(input.Notes),
	}
	if input.Status == StatusPaid {
		paidAt := s.now().UTC()
		record.PaidAt = &paidAt
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}
	return nil
}

// MonthOverview assembles the per-contract rent status and all payments for
// one month, with the aggregate totals described on MonthStats.
func (s *Service) MonthOverview(ctx context.Context, month string) (MonthOverview, error) {
	if err := ValidateMonth(month); err != nil {
		return MonthOverview{}, err
	}

	contracts, err := s.repo.ListActiveContracts(ctx)
	if err != nil {
		return MonthOverview{}, err
	}

	payments, err := s.repo.ListByMonth(ctx, month)
	if err != nil {
		return MonthOverview{}, err
	}

	rentByContract := make(map[uint]Details, len(contracts))
	for _, p := range payments {
		if p.Type == TypeRent {
			if _, ok := rentByContract[p.ContractID]; !ok {
				rentByContract[p.ContractID] = p
			}
		}
	}

	rows := make([]RentStatusRow, 0, len(contracts))
	var expected, paidRent float64
	for _, c := range contracts {
		row := RentStatusRow{
			ContractID:  c.ContractID,
			RoomNumber:  c.RoomNumber,
			TenantName:  c.TenantName,
			MonthlyRent: c.MonthlyRent,
		}
		if rent, ok := rentByContract[c.ContractID]; ok {
			id := rent.ID
			row.PaymentID = &id
			row.Paid = rent.Status == StatusPaid
			row.PaidAmount = rent.Amount
		}
		if row.Paid {
			paidRent += c.MonthlyRent
		}
		expected += c.MonthlyRent
		rows = append(rows, row)
	}

	var collected float64
	for _, p := range payments {
		if p.Status == StatusPaid {
			collected += p.Amount
		}
	}

	return MonthOverview{
		Month:      month,
		RentStatus: rows,
		Payments:   payments,
		Stats: MonthStats{
			TotalExpected: expected,
			TotalPaid:     collected,
			TotalPending:  expected - paidRent,
		},
	}, nil
}

// ValidateMonth checks the YYYY-MM month key format.
func ValidateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return ErrInvalidMonth
	}
	return nil
}
