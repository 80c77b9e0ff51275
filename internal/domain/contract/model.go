package contract

import (
	"time"

	"github.com/QuangTrungK15/motel-management/internal/domain/room"
	"github.com/QuangTrungK15/motel-management/internal/domain/tenant"
)

type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

type Contract struct {
	ID          uint    `gorm:"primaryKey"`
	RoomID      uint    `gorm:"index;not null"`
	TenantID    uint    `gorm:"index;not null"`
	MonthlyRent float64 `gorm:"type:numeric(12,2);not null"`
	Deposit     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     *time.Time
	Status      Status `gorm:"type:varchar(16);not null;index"`
	Notes       string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Room      room.Room     `gorm:"foreignKey:RoomID;references:ID"`
	Tenant    tenant.Tenant `gorm:"foreignKey:TenantID;references:ID"`
	Occupants []Occupant    `gorm:"foreignKey:ContractID;references:ID"`
}

// Occupant is an additional person living under a contract. The batch is
// fixed at move-in time and deleted with the contract.
type Occupant struct {
	ID           uint   `gorm:"primaryKey"`
	ContractID   uint   `gorm:"index;not null"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Phone        string
	IDNumber     string `gorm:"index"`
	IDType       string
	Relationship string
}

type OccupantInput struct {
	FirstName    string
	LastName     string
	Phone        string
	IDNumber     string
	IDType       string
	Relationship string
}

type MoveInInput struct {
	RoomID      uint
	TenantID    uint
	MonthlyRent float64
	Deposit     float64
	StartDate   time.Time
	Notes       string
	Occupants   []OccupantInput
}
