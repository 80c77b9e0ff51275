package payment

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakePaymentRepo struct {
	contracts []ActiveContract
	payments  map[uint]*Payment
	nextID    uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[uint]*Payment),
		nextID:   1,
	}
}

func (r *fakePaymentRepo) ListActiveContracts(ctx context.Context) ([]ActiveContract, error) {
	return r.contracts, nil
}

func (r *fakePaymentRepo) HasRentPayment(ctx context.Context, contractID uint, month string) (bool, error) {
	for _, p := range r.payments {
		if p.ContractID == contractID && p.Month == month && p.Type == TypeRent {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *Payment) error {
	p.ID = r.nextID
	r.nextID++
	stored := *p
	r.payments[p.ID] = &stored
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uint) (*Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) UpdateStatus(ctx context.Context, id uint, status Status, paidAt *time.Time) error {
	p, ok := r.payments[id]
	if !ok {
		return ErrPaymentNotFound
	}
	p.Status = status
	p.PaidAt = paidAt
	return nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.payments[id]; !ok {
		return false, nil
	}
	delete(r.payments, id)
	return true, nil
}

func (r *fakePaymentRepo) ListByMonth(ctx context.Context, month string) ([]Details, error) {
	result := make([]Details, 0)
	for _, p := range r.payments {
		if p.Month == month {
			result = append(result, Details{Payment: *p})
		}
	}
	return result, nil
}

func newTestService(repo *fakePaymentRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateRentForMonth(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.contracts = []ActiveContract{
		{ContractID: 1, MonthlyRent: 3000000, RoomNumber: 101},
		{ContractID: 2, MonthlyRent: 3500000, RoomNumber: 102},
	}

	svc := newTestService(repo)
	created, err := svc.GenerateRentForMonth(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 payments created, got %d", created)
	}

	for _, p := range repo.payments {
		if p.Status != StatusPending || p.Type != TypeRent || p.Method != MethodCash {
			t.Fatalf("unexpected generated payment %+v", p)
		}
	}
}

func TestGenerateRentIsIdempotent(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.contracts = []ActiveContract{
		{ContractID: 1, MonthlyRent: 3000000},
		{ContractID: 2, MonthlyRent: 3500000},
	}

	svc := newTestService(repo)
	if _, err := svc.GenerateRentForMonth(context.Background(), "2024-06"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// Mark contract 1's rent paid; a re-run must not touch it.
	var paidID uint
	for id, p := range repo.payments {
		if p.ContractID == 1 {
			paidID = id
		}
	}
	if err := svc.SetStatus(context.Background(), paidID, true); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	created, err := svc.GenerateRentForMonth(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected 0 payments on re-run, got %d", created)
	}
	if repo.payments[paidID].Status != StatusPaid {
		t.Fatalf("re-run must not reset a paid payment")
	}
}

func TestGenerateRentFillsGapsOnly(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.contracts = []ActiveContract{{ContractID: 1, MonthlyRent: 3000000}}

	svc := newTestService(repo)
	if _, err := svc.GenerateRentForMonth(context.Background(), "2024-06"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	repo.contracts = append(repo.contracts, ActiveContract{ContractID: 2, MonthlyRent: 4000000})
	created, err := svc.GenerateRentForMonth(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected only the new contract's payment, got %d", created)
	}
}

func TestGenerateRentInvalidMonth(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())
	if _, err := svc.GenerateRentForMonth(context.Background(), "06-2024"); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestSetStatusStampsAndClearsPaidAt(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.contracts = []ActiveContract{{ContractID: 1, MonthlyRent: 3000000}}

	svc := newTestService(repo)
	if _, err := svc.GenerateRentForMonth(context.Background(), "2024-06"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if err := svc.SetStatus(context.Background(), 1, true); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	p := repo.payments[1]
	if p.Status != StatusPaid || p.PaidAt == nil {
		t.Fatalf("expected paid with timestamp, got %+v", p)
	}

	if err := svc.SetStatus(context.Background(), 1, false); err != nil {
		t.Fatalf("mark pending failed: %v", err)
	}
	p = repo.payments[1]
	if p.Status != StatusPending || p.PaidAt != nil {
		t.Fatalf("expected pending with cleared timestamp, got %+v", p)
	}
}

func TestSetStatusMissingPayment(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())
	if err := svc.SetStatus(context.Background(), 42, true); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())

	cases := []AddInput{
		{ContractID: 1, Amount: 100, Month: "2024-06", Type: "loan", Method: MethodCash, Status: StatusPaid},
		{ContractID: 1, Amount: 100, Month: "2024-06", Type: TypeRent, Method: "crypto", Status: StatusPaid},
		{ContractID: 1, Amount: 100, Month: "2024-06", Type: TypeRent, Method: MethodCash, Status: "maybe"},
		{ContractID: 1, Amount: 0, Month: "2024-06", Type: TypeRent, Method: MethodCash, Status: StatusPaid},
		{ContractID: 1, Amount: 100, Month: "June", Type: TypeRent, Method: MethodCash, Status: StatusPaid},
	}
	for i, input := range cases {
		if _, err := svc.Add(context.Background(), input); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestAddPaidStampsPaidAt(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newTestService(repo)

	created, err := svc.Add(context.Background(), AddInput{
		ContractID: 1,
		Amount:     500000,
		Month:      "2024-06",
		Type:       TypeUtility,
		Method:     MethodTransfer,
		Status:     StatusPaid,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.PaidAt == nil {
		t.Fatalf("expected paid_at stamped on paid payment")
	}
}

func TestMonthOverviewAggregates(t *testing.T) {
	repo := newFakePaymentRepo()
	repo.contracts = []ActiveContract{
		{ContractID: 1, MonthlyRent: 3000000, RoomNumber: 101},
		{ContractID: 2, MonthlyRent: 4000000, RoomNumber: 102},
	}

	svc := newTestService(repo)
	if _, err := svc.GenerateRentForMonth(context.Background(), "2024-06"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Pay contract 1's rent, and add a paid utility payment on top.
	var rent1 uint
	for id, p := range repo.payments {
		if p.ContractID == 1 {
			rent1 = id
		}
	}
	if err := svc.SetStatus(context.Background(), rent1, true); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if _, err := svc.Add(context.Background(), AddInput{
		ContractID: 1,
		Amount:     500000,
		Month:      "2024-06",
		Type:       TypeUtility,
		Method:     MethodCash,
		Status:     StatusPaid,
	}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	overview, err := svc.MonthOverview(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	// Expected counts rent only; collected counts every paid payment; pending
	// is expected minus the rent actually paid.
	if overview.Stats.TotalExpected != 7000000 {
		t.Fatalf("expected total 7000000, got %v", overview.Stats.TotalExpected)
	}
	if overview.Stats.TotalPaid != 3500000 {
		t.Fatalf("collected must include the utility payment, got %v", overview.Stats.TotalPaid)
	}
	if overview.Stats.TotalPending != 4000000 {
		t.Fatalf("pending must ignore non-rent payments, got %v", overview.Stats.TotalPending)
	}

	if len(overview.RentStatus) != 2 {
		t.Fatalf("expected 2 rent rows, got %d", len(overview.RentStatus))
	}
	for _, row := range overview.RentStatus {
		if row.ContractID == 1 && !row.Paid {
			t.Fatalf("contract 1 rent must be paid")
		}
		if row.ContractID == 2 && row.Paid {
			t.Fatalf("contract 2 rent must be pending")
		}
	}
}

func TestDeleteMissingPayment(t *testing.T) {
	svc := newTestService(newFakePaymentRepo())
	if err := svc.Delete(context.Background(), 7); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
