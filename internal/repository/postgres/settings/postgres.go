package settings

import (
	"context"

	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	settingsdomain "github.com/QuangTrungK15/motel-management/internal/domain/settings"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []settingsdomain.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settingsdomain.Setting{Key: key, Value: value}).Error
}

func (r *PostgresRepository) UpdateAllRoomRates(ctx context.Context, rate float64) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&roomdomain.Room{}).
		Update("rate", rate).Error
}
