package settings

import "time"

// Setting is one row of the persisted key→value store.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Known keys.
const (
	KeyMotelName       = "motel_name"
	KeyMotelAddress    = "motel_address"
	KeyMotelPhone      = "motel_phone"
	KeyDefaultRoomRate = "default_room_rate"
	KeyElectricRate    = "electric_rate"
	KeyWaterRate       = "water_rate"
	KeyCurrency        = "currency"
)

// Fallbacks used when a rate key is missing or unparsable.
const (
	DefaultElectricRate = 3500
	DefaultWaterRate    = 20000
	DefaultRoomRate     = 3000000
	DefaultCurrency     = "VND"
)

// Defaults returns the seed values for every known key.
func Defaults() map[string]string {
	return map[string]string{
		KeyMotelName:       "My Motel",
		KeyMotelAddress:    "",
		KeyMotelPhone:      "",
		KeyDefaultRoomRate: "3000000",
		KeyElectricRate:    "3500",
		KeyWaterRate:       "20000",
		KeyCurrency:        DefaultCurrency,
	}
}

type MotelInfoInput struct {
	Name    string
	Address string
	Phone   string
}

type RatesInput struct {
	DefaultRoomRate string
	ElectricRate    string
	WaterRate       string
	Currency        string
}

// Rates are the per-unit utility prices applied to meter usage.
type Rates struct {
	Electric float64
	Water    float64
}
