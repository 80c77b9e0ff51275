package report

import (
	"context"

	reportdomain "github.com/QuangTrungK15/motel-management/internal/domain/report"
	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPaymentAmounts(ctx context.Context, month string) ([]reportdomain.PaidAmountRow, error) {
	var rows []reportdomain.PaidAmountRow
	if err := r.db.WithContext(ctx).
		Table("payments").
		Select("type, status, amount").
		Where("month = ?", month).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) ListUnpaid(ctx context.Context) ([]reportdomain.UnpaidRow, error) {
	var rows []reportdomain.UnpaidRow
	if err := r.db.WithContext(ctx).
		Table("payments").
		Select(`payments.id AS payment_id, payments.month, payments.amount,
			rooms.number AS room_number,
			tenants.first_name || ' ' || tenants.last_name AS tenant_name`).
		Joins("JOIN contracts ON contracts.id = payments.contract_id").
		Joins("JOIN rooms ON rooms.id = contracts.room_id").
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id").
		Where("payments.status = ?", "pending").
		Order("payments.month asc, rooms.number asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) RoomStatusCounts(ctx context.Context) (roomdomain.StatusCounts, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&roomdomain.Room{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error; err != nil {
		return roomdomain.StatusCounts{}, err
	}

	var counts roomdomain.StatusCounts
	for _, row := range rows {
		counts.Total += row.Count
		switch roomdomain.Status(row.Status) {
		case roomdomain.StatusVacant:
			counts.Vacant = row.Count
		case roomdomain.StatusOccupied:
			counts.Occupied = row.Count
		case roomdomain.StatusMaintenance:
			counts.Maintenance = row.Count
		}
	}
	return counts, nil
}

func (r *PostgresRepository) CountRoomsUnderContract(ctx context.Context, rng reportdomain.MonthRange) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", rng.End, rng.Start).
		Distinct("room_id").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) UtilityTotal(ctx context.Context, month string) (float64, error) {
	var total float64
	if err := r.db.WithContext(ctx).
		Table("utilities").
		Where("month = ?", month).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresRepository) CountActiveContracts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Where("status = ?", "active").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountTenants(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("tenants").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) ListDashboardRooms(ctx context.Context) ([]reportdomain.DashboardRoom, error) {
	var rooms []roomdomain.Room
	if err := r.db.WithContext(ctx).Order("number asc").Find(&rooms).Error; err != nil {
		return nil, err
	}

	var active []struct {
		RoomID     uint   `gorm:"column:room_id"`
		TenantName string `gorm:"column:tenant_name"`
		People     int    `gorm:"column:people"`
	}
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select(`contracts.room_id,
			tenants.first_name || ' ' || tenants.last_name AS tenant_name,
			1 + (SELECT COUNT(*) FROM occupants WHERE occupants.contract_id = contracts.id) AS people`).
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id").
		Where("contracts.status = ?", "active").
		Find(&active).Error; err != nil {
		return nil, err
	}
	byRoom := make(map[uint]struct {
		TenantName string
		People     int
	}, len(active))
	for _, row := range active {
		byRoom[row.RoomID] = struct {
			TenantName string
			People     int
		}{row.TenantName, row.People}
	}

	items := make([]reportdomain.DashboardRoom, 0, len(rooms))
	for _, rm := range rooms {
		item := reportdomain.DashboardRoom{
			RoomID:       rm.ID,
			Number:       rm.Number,
			Status:       string(rm.Status),
			Rate:         rm.Rate,
			MaxOccupants: rm.MaxOccupants,
		}
		if info, ok := byRoom[rm.ID]; ok {
			item.TenantName = info.TenantName
			item.People = info.People
		}
		items = append(items, item)
	}
	return items, nil
}
