package utility

// Utility is one room's meter readings for one month. Unique per
// (room, month); totalAmount is computed and stored at save time.
type Utility struct {
	ID            uint    `gorm:"primaryKey"`
	RoomID        uint    `gorm:"not null;uniqueIndex:idx_utilities_room_month"`
	Month         string  `gorm:"size:7;not null;uniqueIndex:idx_utilities_room_month"`
	ElectricStart float64 `gorm:"not null;default:0"`
	ElectricEnd   float64 `gorm:"not null;default:0"`
	ElectricRate  float64 `gorm:"not null;default:0"`
	WaterStart    float64 `gorm:"not null;default:0"`
	WaterEnd      float64 `gorm:"not null;default:0"`
	WaterRate     float64 `gorm:"not null;default:0"`
	TotalAmount   float64 `gorm:"not null;default:0"`
}

type SaveInput struct {
	RoomID        uint
	Month         string
	ElectricStart float64
	ElectricEnd   float64
	ElectricRate  float64
	WaterStart    float64
	WaterEnd      float64
	WaterRate     float64
}

// Row merges a room with its utility record for the month, falling back to
// zero readings and the default rates when no record exists yet.
type Row struct {
	RoomID        uint
	RoomNumber    int
	UtilityID     *uint
	ElectricStart float64
	ElectricEnd   float64
	ElectricRate  float64
	WaterStart    float64
	WaterEnd      float64
	WaterRate     float64
	TotalAmount   float64
}

type MonthStats struct {
	TotalElectric float64
	TotalWater    float64
	TotalAll      float64
}

type MonthOverview struct {
	Month string
	Rows  []Row
	Stats MonthStats
}
