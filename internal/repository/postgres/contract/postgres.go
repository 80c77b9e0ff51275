package contract

import (
	"context"
	"errors"
	"time"

	contractdomain "github.com/QuangTrungK15/motel-management/internal/domain/contract"
	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	tenantdomain "github.com/QuangTrungK15/motel-management/internal/domain/tenant"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(contractdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*contractdomain.Contract, error) {
	var c contractdomain.Contract
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Tenant").
		Preload("Occupants").
		First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contractdomain.ErrContractNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]contractdomain.Contract, error) {
	var contracts []contractdomain.Contract
	// 'active' sorts before 'ended', so status asc puts active contracts first.
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Tenant").
		Preload("Occupants").
		Order("status asc, start_date desc").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *contractdomain.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PostgresRepository) End(ctx context.Context, id uint, endedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&contractdomain.Contract{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   contractdomain.StatusEnded,
			"end_date": endedAt,
		}).Error
}

func (r *PostgresRepository) GetRoom(ctx context.Context, roomID uint) (*roomdomain.Room, error) {
	var rm roomdomain.Room
	if err := r.db.WithContext(ctx).First(&rm, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roomdomain.ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (r *PostgresRepository) UpdateRoomStatus(ctx context.Context, roomID uint, status roomdomain.Status) error {
	return r.db.WithContext(ctx).
		Model(&roomdomain.Room{}).
		Where("id = ?", roomID).
		Update("status", status).Error
}

func (r *PostgresRepository) ListVacantRooms(ctx context.Context) ([]roomdomain.Room, error) {
	var rooms []roomdomain.Room
	if err := r.db.WithContext(ctx).
		Where("status = ?", roomdomain.StatusVacant).
		Order("number asc").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *PostgresRepository) ListTenantsWithoutActiveContract(ctx context.Context) ([]tenantdomain.Tenant, error) {
	var tenants []tenantdomain.Tenant
	if err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", r.db.
			Table("contracts").
			Select("tenant_id").
			Where("status = ?", contractdomain.StatusActive)).
		Order("first_name asc, last_name asc").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
