package tenant

import "time"

type Tenant struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Phone     string
	Email     string
	IDType    string
	IDNumber  string `gorm:"index"`
	Notes     string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ListItem is a tenant plus the room of their active contract, if any.
type ListItem struct {
	Tenant
	ActiveRoomNumber *int
}

type CreateInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	IDType    string
	IDNumber  string
	Notes     string
}

type UpdateInput struct {
	ID uint
	CreateInput
}
