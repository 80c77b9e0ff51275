package utility

import (
	"context"

	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	utilitydomain "github.com/QuangTrungK15/motel-management/internal/domain/utility"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var conflictKey = []clause.Column{{Name: "room_id"}, {Name: "month"}}

func (r *PostgresRepository) Upsert(ctx context.Context, record *utilitydomain.Utility) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: conflictKey,
			DoUpdates: clause.AssignmentColumns([]string{
				"electric_start", "electric_end", "electric_rate",
				"water_start", "water_end", "water_rate",
				"total_amount",
			}),
		}).
		Create(record).Error
}

func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, record *utilitydomain.Utility) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: conflictKey, DoNothing: true}).
		Create(record)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListByMonth(ctx context.Context, month string) ([]utilitydomain.Utility, error) {
	var records []utilitydomain.Utility
	if err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) ListRooms(ctx context.Context) ([]roomdomain.Room, error) {
	var rooms []roomdomain.Room
	if err := r.db.WithContext(ctx).Order("number asc").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
