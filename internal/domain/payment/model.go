package payment

import "time"

type Type string

const (
	TypeRent    Type = "rent"
	TypeDeposit Type = "deposit"
	TypeUtility Type = "utility"
	TypeOther   Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRent, TypeDeposit, TypeUtility, TypeOther:
		return true
	}
	return false
}

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodCard     Method = "card"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodCard:
		return true
	}
	return false
}

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Payment struct {
	ID         uint    `gorm:"primaryKey"`
	ContractID uint    `gorm:"index;not null"`
	Amount     float64 `gorm:"type:numeric(12,2);not null"`
	Month      string  `gorm:"size:7;index;not null"`
	Type       Type    `gorm:"type:varchar(16);not null"`
	Method     Method  `gorm:"type:varchar(16);not null"`
	Status     Status  `gorm:"type:varchar(16);not null"`
	PaidAt     *time.Time
	Notes      string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// ActiveContract is the slice of contract data rent generation and the month
// overview need.
type ActiveContract struct {
	ContractID  uint
	MonthlyRent float64
	RoomNumber  int
	TenantName  string
}

// Details is a payment joined with its contract's room and tenant.
type Details struct {
	Payment
	RoomNumber int
	TenantName string
}

type AddInput struct {
	ContractID uint
	Amount     float64
	Month      string
	Type       Type
	Method     Method
	Status     Status
	Notes      string
}

// RentStatusRow is the per-contract rent state for one month. A nil
// PaymentID means rent was not generated yet for that contract.
type RentStatusRow struct {
	ContractID  uint
	RoomNumber  int
	TenantName  string
	MonthlyRent float64
	PaymentID   *uint
	Paid        bool
	PaidAmount  float64
}

// MonthStats preserves the original reporting semantics: Collected sums paid
// payments of every type, while Pending is defined over rent obligations
// only. The asymmetry is deliberate.
type MonthStats struct {
	TotalExpected float64
	TotalPaid     float64
	TotalPending  float64
}

type MonthOverview struct {
	Month      string
	RentStatus []RentStatusRow
	Payments   []Details
	Stats      MonthStats
}
