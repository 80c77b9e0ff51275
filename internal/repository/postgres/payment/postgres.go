package payment

import (
	"context"
	"errors"
	"time"

	paymentdomain "github.com/QuangTrungK15/motel-management/internal/domain/payment"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActiveContracts(ctx context.Context) ([]paymentdomain.ActiveContract, error) {
	var rows []struct {
		ContractID  uint    `gorm:"column:contract_id"`
		MonthlyRent float64 `gorm:"column:monthly_rent"`
		RoomNumber  int     `gorm:"column:room_number"`
		TenantName  string  `gorm:"column:tenant_name"`
	}
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select(`contracts.id AS contract_id, contracts.monthly_rent,
			rooms.number AS room_number,
			tenants.first_name || ' ' || tenants.last_name AS tenant_name`).
		Joins("JOIN rooms ON rooms.id = contracts.room_id").
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id").
		Where("contracts.status = ?", "active").
		Order("rooms.number asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	contracts := make([]paymentdomain.ActiveContract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, paymentdomain.ActiveContract{
			ContractID:  row.ContractID,
			MonthlyRent: row.MonthlyRent,
			RoomNumber:  row.RoomNumber,
			TenantName:  row.TenantName,
		})
	}
	return contracts, nil
}

func (r *PostgresRepository) HasRentPayment(ctx context.Context, contractID uint, month string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&paymentdomain.Payment{}).
		Where("contract_id = ? AND month = ? AND type = ?", contractID, month, paymentdomain.TypeRent).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *paymentdomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*paymentdomain.Payment, error) {
	var p paymentdomain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentdomain.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id uint, status paymentdomain.Status, paidAt *time.Time) error {
	return r.db.WithContext(ctx).
		Model(&paymentdomain.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  status,
			"paid_at": paidAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&paymentdomain.Payment{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListByMonth(ctx context.Context, month string) ([]paymentdomain.Details, error) {
	var payments []paymentdomain.Payment
	if err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return []paymentdomain.Details{}, nil
	}

	contractIDs := make([]uint, 0, len(payments))
	seen := make(map[uint]bool, len(payments))
	for _, p := range payments {
		if !seen[p.ContractID] {
			seen[p.ContractID] = true
			contractIDs = append(contractIDs, p.ContractID)
		}
	}

	var rows []struct {
		ContractID uint   `gorm:"column:contract_id"`
		RoomNumber int    `gorm:"column:room_number"`
		TenantName string `gorm:"column:tenant_name"`
	}
	if err := r.db.WithContext(ctx).
		Table("contracts").
		Select(`contracts.id AS contract_id, rooms.number AS room_number,
			tenants.first_name || ' ' || tenants.last_name AS tenant_name`).
		Joins("JOIN rooms ON rooms.id = contracts.room_id").
		Joins("JOIN tenants ON tenants.id = contracts.tenant_id").
		Where("contracts.id IN ?", contractIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	byContract := make(map[uint]struct {
		RoomNumber int
		TenantName string
	}, len(rows))
	for _, row := range rows {
		byContract[row.ContractID] = struct {
			RoomNumber int
			TenantName string
		}{row.RoomNumber, row.TenantName}
	}

	details := make([]paymentdomain.Details, 0, len(payments))
	for _, p := range payments {
		d := paymentdomain.Details{Payment: p}
		if info, ok := byContract[p.ContractID]; ok {
			d.RoomNumber = info.RoomNumber
			d.TenantName = info.TenantName
		}
		details = append(details, d)
	}
	return details, nil
}
