package room

import "time"

// Status is the closed set of room states. Vacant and occupied are driven by
// the contract engine; maintenance is only ever set by a manual edit.
type Status string

const (
	StatusVacant      Status = "vacant"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusVacant, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

type Room struct {
	ID           uint    `gorm:"primaryKey"`
	Number       int     `gorm:"uniqueIndex;not null"`
	Name         string  `gorm:"not null"`
	Floor        int     `gorm:"not null"`
	Rate         float64 `gorm:"type:numeric(12,2);not null"`
	MaxOccupants int     `gorm:"not null;default:5"`
	Status       Status  `gorm:"type:varchar(16);not null;default:vacant"`
	Notes        string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// ListItem is a room together with its current occupancy, for the room grid
// and the dashboard.
type ListItem struct {
	Room
	ActiveContractID *uint
	TenantName       string
	People           int
}

type StatusCounts struct {
	Total       int64
	Vacant      int64
	Occupied    int64
	Maintenance int64
}

type UpdateInput struct {
	ID     uint
	Rate   float64
	Status Status
	Notes  string
}
