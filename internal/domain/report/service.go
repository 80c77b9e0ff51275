package report

import (
	"context"
	"math"
	"time"
)

const historyMonths = 6

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Monthly assembles the reports page: paid income split by type, pending
// payments across all months, occupancy and its six-month history, and the
// month's utility cost.
func (s *Service) Monthly(ctx context.Context, month string) (Monthly, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return Monthly{}, err
	}

	amounts, err := s.repo.ListPaymentAmounts(ctx, month)
	if err != nil {
		return Monthly{}, err
	}

	var income IncomeByType
	for _, row := range amounts {
		if row.Status != "paid" {
			continue
		}
		switch row.Type {
		case "rent":
			income.Rent += row.Amount
		case "deposit":
			income.Deposit += row.Amount
		case "utility":
			income.Utility += row.Amount
		case "other":
			income.Other += row.Amount
		}
	}
	income.Total = income.Rent + income.Deposit + income.Utility + income.Other

	unpaid, err := s.repo.ListUnpaid(ctx)
	if err != nil {
		return Monthly{}, err
	}
	var totalUnpaid float64
	for _, row := range unpaid {
		totalUnpaid += row.Amount
	}

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		return Monthly{}, err
	}
	occupancy := Occupancy{
		Total:       counts.Total,
		Occupied:    counts.Occupied,
		Vacant:      counts.Vacant,
		Maintenance: counts.Maintenance,
	}
	if counts.Total > 0 {
		occupancy.Rate = int(math.Round(float64(counts.Occupied) / float64(counts.Total) * 100))
	}

	history, err := s.occupancyHistory(ctx)
	if err != nil {
		return Monthly{}, err
	}

	utilityTotal, err := s.repo.UtilityTotal(ctx, month)
	if err != nil {
		return Monthly{}, err
	}

	return Monthly{
		Month:            month,
		Income:           income,
		UnpaidPayments:   unpaid,
		TotalUnpaid:      totalUnpaid,
		Occupancy:        occupancy,
		OccupancyHistory: history,
		TotalUtilityCost: utilityTotal,
	}, nil
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	rooms, err := s.repo.ListDashboardRooms(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	counts, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	activeContracts, err := s.repo.CountActiveContracts(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	tenants, err := s.repo.CountTenants(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Rooms: rooms,
		Stats: DashboardStats{
			TotalRooms:       counts.Total,
			OccupiedRooms:    counts.Occupied,
			VacantRooms:      counts.Vacant,
			MaintenanceRooms: counts.Maintenance,
			ActiveContracts:  activeContracts,
			TotalTenants:     tenants,
		},
	}, nil
}

func (s *Service) occupancyHistory(ctx context.Context) ([]HistoryPoint, error) {
	now := s.now()
	points := make([]HistoryPoint, 0, historyMonths)

	for i := -(historyMonths - 1); i <= 0; i++ {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
		last := first.AddDate(0, 1, 0).Add(-time.Second)

		count, err := s.repo.CountRoomsUnderContract(ctx, MonthRange{Start: first, End: last})
		if err != nil {
			return nil, err
		}

		points = append(points, HistoryPoint{
			Month:     first.Format("2006-01"),
			Contracts: count,
		})
	}

	return points, nil
}
