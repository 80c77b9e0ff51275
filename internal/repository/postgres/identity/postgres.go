package identity

import (
	"context"
	"errors"

	identitydomain "github.com/QuangTrungK15/motel-management/internal/domain/identity"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type holderRow struct {
	FirstName string
	LastName  string
}

func (r *PostgresRepository) FindTenant(ctx context.Context, idNumber string, excludeID uint) (*identitydomain.Holder, error) {
	query := r.db.WithContext(ctx).
		Table("tenants").
		Select("first_name, last_name").
		Where("id_number = ?", idNumber)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var row holderRow
	if err := query.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &identitydomain.Holder{
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Kind:      identitydomain.KindTenant,
	}, nil
}

func (r *PostgresRepository) FindOccupant(ctx context.Context, idNumber string, excludeIDs []uint) (*identitydomain.Holder, error) {
	query := r.db.WithContext(ctx).
		Table("occupants").
		Select("first_name, last_name").
		Where("id_number = ?", idNumber)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var row holderRow
	if err := query.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &identitydomain.Holder{
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Kind:      identitydomain.KindOccupant,
	}, nil
}
