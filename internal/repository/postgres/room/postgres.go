package room

import (
	"context"
	"errors"

	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type activeContractRow struct {
	ContractID uint   `gorm:"column:contract_id"`
	RoomID     uint   `gorm:"column:room_id"`
	TenantName string `gorm:"column:tenant_name"`
	People     int    `gorm:"column:people"`
}

func (r *PostgresRepository) List(ctx context.Context) ([]roomdomain.ListItem, error) {
	var rooms []roomdomain.Room
	if err := r.db.WithContext(ctx).Order("number asc").Find(&rooms).Error; err != nil {
		return nil, err
	}

	var active []activeContractRow
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select(`contracts.id AS contract_id, contracts.room_id,
			tenants.first_name || ' ' || tenants.last_name AS tenant_name,
			1 + (SELECT COUNT(*) FROM occupants WHERE occupants.contract_id = contracts.id) AS people`).
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id").
		Where("contracts.status = ?", "active").
		Find(&active).Error; err != nil {
		return nil, err
	}

	byRoom := make(map[uint]activeContractRow, len(active))
	for _, row := range active {
		byRoom[row.RoomID] = row
	}

	items := make([]roomdomain.ListItem, 0, len(rooms))
	for _, rm := range rooms {
		item := roomdomain.ListItem{Room: rm}
		if row, ok := byRoom[rm.ID]; ok {
			id := row.ContractID
			item.ActiveContractID = &id
			item.TenantName = row.TenantName
			item.People = row.People
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*roomdomain.Room, error) {
	var rm roomdomain.Room
	if err := r.db.WithContext(ctx).First(&rm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roomdomain.ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (r *PostgresRepository) Update(ctx context.Context, input roomdomain.UpdateInput) error {
	return r.db.WithContext(ctx).
		Model(&roomdomain.Room{}).
		Where("id = ?", input.ID).
		Updates(map[string]interface{}{
			"rate":   input.Rate,
			"status": input.Status,
			"notes":  input.Notes,
		}).Error
}

func (r *PostgresRepository) StatusCounts(ctx context.Context) (roomdomain.StatusCounts, error) {
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
