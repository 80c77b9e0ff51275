package tenant

import (
	"context"
	"errors"

	tenantdomain "github.com/QuangTrungK15/motel-management/internal/domain/tenant"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(tenantdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, search string) ([]tenantdomain.ListItem, error) {
	query := r.db.WithContext(ctx).Model(&tenantdomain.Tenant{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"lower(first_name) LIKE lower(?) OR lower(last_name) LIKE lower(?) OR phone LIKE ? OR id_number LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var tenants []tenantdomain.Tenant
	if err := query.Order("created_at desc").Find(&tenants).Error; err != nil {
		return nil, err
	}

	var active []struct {
		TenantID   uint `gorm:"column:tenant_id"`
		RoomNumber int  `gorm:"column:room_number"`
	}
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select("contracts.tenant_id, rooms.number AS room_number").
		Joins("JOIN rooms ON rooms.id = contracts.room_id").
		Where("contracts.status = ?", "active").
		Find(&active).Error; err != nil {
		return nil, err
	}
	roomByTenant := make(map[uint]int, len(active))
	for _, row := range active {
		roomByTenant[row.TenantID] = row.RoomNumber
	}

	items := make([]tenantdomain.ListItem, 0, len(tenants))
	for _, t := range tenants {
		item := tenantdomain.ListItem{Tenant: t}
		if number, ok := roomByTenant[t.ID]; ok {
			n := number
			item.ActiveRoomNumber = &n
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*tenantdomain.Tenant, error) {
	var t tenantdomain.Tenant
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenantdomain.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *tenantdomain.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PostgresRepository) Update(ctx context.Context, t *tenantdomain.Tenant) error {
	return r.db.WithContext(ctx).
		Model(&tenantdomain.Tenant{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"first_name": t.FirstName,
			"last_name":  t.LastName,
			"phone":      t.Phone,
			"email":      t.Email,
			"id_type":    t.IDType,
			"id_number":  t.IDNumber,
			"notes":      t.Notes,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&tenantdomain.Tenant{}, id).Error
}

func (r *PostgresRepository) CountActiveContracts(ctx context.Context, tenantID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Where("tenant_id = ? AND status = ?", tenantID, "active").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) ListContractIDs(ctx context.Context, tenantID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Where("tenant_id = ?", tenantID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) DeleteOccupantsByContracts(ctx context.Context, contractIDs []uint) error {
	if len(contractIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("DELETE FROM occupants WHERE contract_id IN ?", contractIDs).Error
}

func (r *PostgresRepository) DeletePaymentsByContracts(ctx context.Context, contractIDs []uint) error {
	if len(contractIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("DELETE FROM payments WHERE contract_id IN ?", contractIDs).Error
}

func (r *PostgresRepository) DeleteContractsByTenant(ctx context.Context, tenantID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM contracts WHERE tenant_id = ?", tenantID).Error
}
