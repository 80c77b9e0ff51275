package report

import (
	"context"
	"testing"
	"time"

	"github.com/QuangTrungK15/motel-management/internal/domain/room"
)

type fakeReportRepo struct {
	amounts      []PaidAmountRow
	unpaid       []UnpaidRow
	counts       room.StatusCounts
	utilityTotal float64
	active       int64
	tenants      int64
	rooms        []DashboardRoom
	ranges       []MonthRange
}

func (r *fakeReportRepo) ListPaymentAmounts(ctx context.Context, month string) ([]PaidAmountRow, error) {
	return r.amounts, nil
}

func (r *fakeReportRepo) ListUnpaid(ctx context.Context) ([]UnpaidRow, error) {
	return r.unpaid, nil
}

func (r *fakeReportRepo) RoomStatusCounts(ctx context.Context) (room.StatusCounts, error) {
	return r.counts, nil
}

func (r *fakeReportRepo) CountRoomsUnderContract(ctx context.Context, rng MonthRange) (int64, error) {
	r.ranges = append(r.ranges, rng)
	return int64(len(r.ranges)), nil
}

func (r *fakeReportRepo) UtilityTotal(ctx context.Context, month string) (float64, error) {
	return r.utilityTotal, nil
}

func (r *fakeReportRepo) CountActiveContracts(ctx context.Context) (int64, error) {
	return r.active, nil
}

func (r *fakeReportRepo) CountTenants(ctx context.Context) (int64, error) {
	return r.tenants, nil
}

func (r *fakeReportRepo) ListDashboardRooms(ctx context.Context) ([]DashboardRoom, error) {
	return r.rooms, nil
}

func newTestService(repo *fakeReportRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestMonthlyIncomeSplitsPaidByType(t *testing.T) {
	repo := &fakeReportRepo{
		amounts: []PaidAmountRow{
			{Type: "rent", Status: "paid", Amount: 3000000},
			{Type: "rent", Status: "pending", Amount: 4000000},
			{Type: "deposit", Status: "paid", Amount: 1000000},
			{Type: "utility", Status: "paid", Amount: 215000},
			{Type: "other", Status: "paid", Amount: 50000},
		},
		counts: room.StatusCounts{Total: 10, Occupied: 4, Vacant: 5, Maintenance: 1},
	}

	svc := newTestService(repo)
	report, err := svc.Monthly(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if report.Income.Rent != 3000000 {
		t.Fatalf("pending rent must not count as income, got %v", report.Income.Rent)
	}
	if report.Income.Total != 3000000+1000000+215000+50000 {
		t.Fatalf("unexpected income total %v", report.Income.Total)
	}
}

func TestMonthlyUnpaidSpansAllMonths(t *testing.T) {
	repo := &fakeReportRepo{
		unpaid: []UnpaidRow{
			{PaymentID: 1, Month: "2024-04", Amount: 3000000},
			{PaymentID: 2, Month: "2024-06", Amount: 4000000},
		},
	}

	svc := newTestService(repo)
	report, err := svc.Monthly(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.UnpaidPayments) != 2 {
		t.Fatalf("expected unpaid rows from every month, got %d", len(report.UnpaidPayments))
	}
	if report.TotalUnpaid != 7000000 {
		t.Fatalf("unexpected unpaid total %v", report.TotalUnpaid)
	}
}

func TestMonthlyOccupancyRateRounds(t *testing.T) {
	repo := &fakeReportRepo{
		counts: room.StatusCounts{Total: 3, Occupied: 2, Vacant: 1},
	}

	svc := newTestService(repo)
	report, err := svc.Monthly(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Occupancy.Rate != 67 {
		t.Fatalf("expected rate 67, got %d", report.Occupancy.Rate)
	}
}

func TestMonthlyZeroRoomsZeroRate(t *testing.T) {
	svc := newTestService(&fakeReportRepo{})
	report, err := svc.Monthly(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Occupancy.Rate != 0 {
		t.Fatalf("expected rate 0 with no rooms, got %d", report.Occupancy.Rate)
	}
}

func TestMonthlyHistoryCoversSixMonths(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := newTestService(repo)

	report, err := svc.Monthly(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.OccupancyHistory) != 6 {
		t.Fatalf("expected 6 history points, got %d", len(report.OccupancyHistory))
	}
	if report.OccupancyHistory[0].Month != "2024-01" {
		t.Fatalf("expected history to start at 2024-01, got %q", report.OccupancyHistory[0].Month)
	}
	if report.OccupancyHistory[5].Month != "2024-06" {
		t.Fatalf("expected history to end at 2024-06, got %q", report.OccupancyHistory[5].Month)
	}

	first := repo.ranges[0]
	if !first.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first range start %v", first.Start)
	}
	if first.End.Month() != time.January || first.End.Day() != 31 {
		t.Fatalf("range must end inside the month, got %v", first.End)
	}
}

func TestMonthlyInvalidMonth(t *testing.T) {
	svc := newTestService(&fakeReportRepo{})
	if _, err := svc.Monthly(context.Background(), "June 2024"); err == nil {
		t.Fatalf("expected invalid month error")
	}
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeReportRepo{
		counts:  room.StatusCounts{Total: 10, Occupied: 4, Vacant: 5, Maintenance: 1},
		active:  4,
		tenants: 6,
		rooms: []DashboardRoom{
			{RoomID: 1, Number: 101, Status: "occupied", TenantName: "Anh Tran", People: 3},
			{RoomID: 2, Number: 102, Status: "vacant"},
		},
	}

	svc := newTestService(repo)
	dashboard, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dashboard.Stats.ActiveContracts != 4 || dashboard.Stats.TotalTenants != 6 {
		t.Fatalf("unexpected stats %+v", dashboard.Stats)
	}
	if len(dashboard.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(dashboard.Rooms))
	}
}
