package utility

import (
	"context"
	"time"
)

type Service struct {
	repo  Repository
	rates RatesProvider
}

func NewService(repo Repository, rates RatesProvider) *Service {
	return &Service{repo: repo, rates: rates}
}

// SaveReading upserts one room's readings for a month. The stored total is
// recomputed here, at save time, never lazily on read.
func (s *Service) SaveReading(ctx context.Context, input SaveInput) (*Utility, error) {
	if _, err := time.Parse("2006-01", input.Month); err != nil {
		return nil, ErrInvalidMonth
	}

	_, electricCost := ComputeUsageAndCost(input.ElectricStart, input.ElectricEnd, input.ElectricRate)
	_, waterCost := ComputeUsageAndCost(input.WaterStart, input.WaterEnd, input.WaterRate)

	record := Utility{
		RoomID:        input.RoomID,
		Month:         input.Month,
		ElectricStart: input.ElectricStart,
		ElectricEnd:   input.ElectricEnd,
		ElectricRate:  input.ElectricRate,
		WaterStart:    input.WaterStart,
		WaterEnd:      input.WaterEnd,
		WaterRate:     input.WaterRate,
		TotalAmount:   electricCost + waterCost,
	}
	if err := s.repo.Upsert(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GenerateAllForMonth seeds a utility row for every room: start readings
// carry over from the previous month's end readings (0 when none), end
// readings equal start, rates come from settings. Rooms that already have a
// row for the month are left untouched. Returns the number of rows created.
func (s *Service) GenerateAllForMonth(ctx context.Context, month string) (int, error) {
	prevMonth, err := PreviousMonth(month)
	if err != nil {
		return 0, err
	}

	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return 0, err
	}

	prevRows, err := s.repo.ListByMonth(ctx, prevMonth)
	if err != nil {
		return 0, err
	}
	prevByRoom := make(map[uint]Utility, len(prevRows))
	for _, u := range prevRows {
		prevByRoom[u.RoomID] = u
	}

	rates, err := s.rates.Rates(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, rm := range rooms {
		record := Utility{
			RoomID:       rm.ID,
			Month:        month,
			ElectricRate: rates.Electric,
			WaterRate:    rates.Water,
		}
		if prev, ok := prevByRoom[rm.ID]; ok {
			record.ElectricStart = prev.ElectricEnd
			record.ElectricEnd = prev.ElectricEnd
			record.WaterStart = prev.WaterEnd
			record.WaterEnd = prev.WaterEnd
		}

		inserted, err := s.repo.CreateIfAbsent(ctx, &record)
		if err != nil {
			return created, err
		}
		if inserted {
			created++
		}
	}

	return created, nil
}

// MonthOverview merges every room with its utility record for the month,
// defaulting absent rooms to zero readings at the current settings rates.
func (s *Service) MonthOverview(ctx context.Context, month string) (MonthOverview, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return MonthOverview{}, ErrInvalidMonth
	}

	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return MonthOverview{}, err
	}

	records, err := s.repo.ListByMonth(ctx, month)
	if err != nil {
		return MonthOverview{}, err
	}
	byRoom := make(map[uint]Utility, len(records))
	for _, u := range records {
		byRoom[u.RoomID] = u
	}

	rates, err := s.rates.Rates(ctx)
	if err != nil {
		return MonthOverview{}, err
	}

	rows := make([]Row, 0, len(rooms))
	var stats MonthStats
	for _, rm := range rooms {
		row := Row{
			RoomID:       rm.ID,
			RoomNumber:   rm.Number,
			ElectricRate: rates.Electric,
			WaterRate:    rates.Water,
		}
		if u, ok := byRoom[rm.ID]; ok {
			id := u.ID
			row.UtilityID = &id
			row.ElectricStart = u.ElectricStart
			row.ElectricEnd = u.ElectricEnd
			row.ElectricRate = u.ElectricRate
			row.WaterStart = u.WaterStart
			row.WaterEnd = u.WaterEnd
			row.WaterRate = u.WaterRate
			row.TotalAmount = u.TotalAmount
		}

		_, electricCost := ComputeUsageAndCost(row.ElectricStart, row.ElectricEnd, row.ElectricRate)
		_, waterCost := ComputeUsageAndCost(row.WaterStart, row.WaterEnd, row.WaterRate)
		stats.TotalElectric += electricCost
		stats.TotalWater += waterCost
		stats.TotalAll += row.TotalAmount

		rows = append(rows, row)
	}

	return MonthOverview{Month: month, Rows: rows, Stats: stats}, nil
}
