package utility

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/settings"
)

type fakeUtilityRepo struct {
	rooms   []room.Room
	records map[string]*Utility
	nextID  uint
}

func newFakeUtilityRepo() *fakeUtilityRepo {
	return &fakeUtilityRepo{
		records: make(map[string]*Utility),
		nextID:  1,
	}
}

func key(roomID uint, month string) string {
	return month + "#" + string(rune('0'+roomID))
}

func (r *fakeUtilityRepo) Upsert(ctx context.Context, record *Utility) error {
	k := key(record.RoomID, record.Month)
	if existing, ok := r.records[k]; ok {
		record.ID = existing.ID
	} else {
		record.ID = r.nextID
		r.nextID++
	}
	stored := *record
	r.records[k] = &stored
	return nil
}

func (r *fakeUtilityRepo) CreateIfAbsent(ctx context.Context, record *Utility) (bool, error) {
	k := key(record.RoomID, record.Month)
	if _, ok := r.records[k]; ok {
		return false, nil
	}
	record.ID = r.nextID
	r.nextID++
	stored := *record
	r.records[k] = &stored
	return true, nil
}

func (r *fakeUtilityRepo) ListByMonth(ctx context.Context, month string) ([]Utility, error) {
	result := make([]Utility, 0)
	for _, u := range r.records {
		if u.Month == month {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *fakeUtilityRepo) ListRooms(ctx context.Context) ([]room.Room, error) {
	return r.rooms, nil
}

type fakeRates struct {
	electric float64
	water    float64
}

func (f fakeRates) Rates(ctx context.Context) (settings.Rates, error) {
	return settings.Rates{Electric: f.electric, Water: f.water}, nil
}

func TestComputeUsageAndCost(t *testing.T) {
	usage, cost := ComputeUsageAndCost(100, 150, 3500)
	if usage != 50 || cost != 175000 {
		t.Fatalf("expected usage 50 cost 175000, got %v %v", usage, cost)
	}
}

func TestComputeUsageClampsNegativeDelta(t *testing.T) {
	usage, cost := ComputeUsageAndCost(150, 100, 3500)
	if usage != 0 || cost != 0 {
		t.Fatalf("meter rollback must clamp to zero, got %v %v", usage, cost)
	}
}

func TestPreviousMonthCrossesYear(t *testing.T) {
	prev, err := PreviousMonth("2024-01")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prev != "2023-12" {
		t.Fatalf("expected 2023-12, got %q", prev)
	}
}

func TestSaveReadingComputesTotal(t *testing.T) {
	repo := newFakeUtilityRepo()
	svc := NewService(repo, fakeRates{electric: 3500, water: 20000})

	saved, err := svc.SaveReading(context.Background(), SaveInput{
		RoomID:        1,
		Month:         "2024-06",
		ElectricStart: 100,
		ElectricEnd:   150,
		ElectricRate:  3500,
		WaterStart:    10,
		WaterEnd:      12,
		WaterRate:     20000,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved.TotalAmount != 50*3500+2*20000 {
		t.Fatalf("unexpected total %v", saved.TotalAmount)
	}
}

func TestSaveReadingInvalidMonth(t *testing.T) {
	svc := NewService(newFakeUtilityRepo(), fakeRates{})
	if _, err := svc.SaveReading(context.Background(), SaveInput{RoomID: 1, Month: "bad"}); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestGenerateAllCarriesForwardPreviousEnds(t *testing.T) {
	repo := newFakeUtilityRepo()
	repo.rooms = []room.Room{{ID: 1, Number: 101}, {ID: 2, Number: 102}}
	repo.records[key(1, "2024-05")] = &Utility{
		ID: 99, RoomID: 1, Month: "2024-05",
		ElectricEnd: 150, WaterEnd: 12,
	}

	svc := NewService(repo, fakeRates{electric: 3500, water: 20000})
	created, err := svc.GenerateAllForMonth(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 rows created, got %d", created)
	}

	carried := repo.records[key(1, "2024-06")]
	if carried.ElectricStart != 150 || carried.ElectricEnd != 150 {
		t.Fatalf("expected electric readings carried from previous end, got %+v", carried)
	}
	if carried.WaterStart != 12 || carried.WaterEnd != 12 {
		t.Fatalf("expected water readings carried from previous end, got %+v", carried)
	}
	if carried.ElectricRate != 3500 || carried.WaterRate != 20000 {
		t.Fatalf("expected settings rates applied, got %+v", carried)
	}

	fresh := repo.records[key(2, "2024-06")]
	if fresh.ElectricStart != 0 || fresh.WaterStart != 0 {
		t.Fatalf("room without history must start at zero, got %+v", fresh)
	}
}

func TestGenerateAllDoesNotClobberExisting(t *testing.T) {
	repo := newFakeUtilityRepo()
	repo.rooms = []room.Room{{ID: 1, Number: 101}}
	repo.records[key(1, "2024-06")] = &Utility{
		ID: 5, RoomID: 1, Month: "2024-06",
		ElectricStart: 100, ElectricEnd: 175, TotalAmount: 262500,
	}

	svc := NewService(repo, fakeRates{electric: 3500, water: 20000})
	created, err := svc.GenerateAllForMonth(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created != 0 {
		t.Fatalf("expected no rows created, got %d", created)
	}
	if repo.records[key(1, "2024-06")].ElectricEnd != 175 {
		t.Fatalf("existing readings must be left untouched")
	}
}

func TestMonthOverviewMergesRoomsAndRecords(t *testing.T) {
	repo := newFakeUtilityRepo()
	repo.rooms = []room.Room{{ID: 1, Number: 101}, {ID: 2, Number: 102}}
	repo.records[key(1, "2024-06")] = &Utility{
		ID: 5, RoomID: 1, Month: "2024-06",
		ElectricStart: 100, ElectricEnd: 150, ElectricRate: 3500,
		WaterStart: 10, WaterEnd: 12, WaterRate: 20000,
		TotalAmount: 215000,
	}

	svc := NewService(repo, fakeRates{electric: 4000, water: 25000})
	overview, err := svc.MonthOverview(context.Background(), "2024-06")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(overview.Rows) != 2 {
		t.Fatalf("expected a row per room, got %d", len(overview.Rows))
	}

	var withRecord, without Row
	for _, row := range overview.Rows {
		if row.RoomID == 1 {
			withRecord = row
		} else {
			without = row
		}
	}

	if withRecord.UtilityID == nil || *withRecord.UtilityID != 5 {
		t.Fatalf("expected recorded row to carry its id, got %+v", withRecord)
	}
	if withRecord.ElectricRate != 3500 {
		t.Fatalf("recorded row must keep its stored rate, got %v", withRecord.ElectricRate)
	}
	if without.UtilityID != nil {
		t.Fatalf("room without record must have nil utility id")
	}
	if without.ElectricRate != 4000 || without.WaterRate != 25000 {
		t.Fatalf("defaults must come from settings rates, got %+v", without)
	}

	if overview.Stats.TotalElectric != 175000 || overview.Stats.TotalWater != 40000 {
		t.Fatalf("unexpected stats %+v", overview.Stats)
	}
	if overview.Stats.TotalAll != 215000 {
		t.Fatalf("total all must sum stored totals, got %v", overview.Stats.TotalAll)
	}
}
