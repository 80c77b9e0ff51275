package report

import "time"

// IncomeByType is the paid income of one month, split the way the reports
// page shows it.
type IncomeByType struct {
	Rent    float64 `json:"rent"`
	Deposit float64 `json:"deposit"`
	Utility float64 `json:"utility"`
	Other   float64 `json:"other"`
	Total   float64 `json:"total"`
}

// UnpaidRow is a pending payment of any month, joined with its contract.
type UnpaidRow struct {
	PaymentID  uint    `json:"payment_id"`
	Month      string  `json:"month"`
	Amount     float64 `json:"amount"`
	RoomNumber int     `json:"room_number"`
	TenantName string  `json:"tenant_name"`
}

type Occupancy struct {
	Total       int64 `json:"total"`
	Occupied    int64 `json:"occupied"`
	Vacant      int64 `json:"vacant"`
	Maintenance int64 `json:"maintenance"`
	Rate        int   `json:"rate"`
}

// HistoryPoint counts the rooms under contract during one month.
type HistoryPoint struct {
	Month     string `json:"month"`
	Contracts int64  `json:"contracts"`
}

type Monthly struct {
	Month            string         `json:"month"`
	Income           IncomeByType   `json:"income"`
	UnpaidPayments   []UnpaidRow    `json:"unpaid_payments"`
	TotalUnpaid      float64        `json:"total_unpaid"`
	Occupancy        Occupancy      `json:"occupancy"`
	OccupancyHistory []HistoryPoint `json:"occupancy_history"`
	TotalUtilityCost float64        `json:"total_utility_cost"`
}

// DashboardRoom is one cell of the dashboard room grid.
type DashboardRoom struct {
	RoomID       uint    `json:"room_id"`
	Number       int     `json:"number"`
	Status       string  `json:"status"`
	Rate         float64 `json:"rate"`
	MaxOccupants int     `json:"max_occupants"`
	TenantName   string  `json:"tenant_name,omitempty"`
	People       int     `json:"people"`
}

type DashboardStats struct {
	TotalRooms       int64 `json:"total_rooms"`
	OccupiedRooms    int64 `json:"occupied_rooms"`
	VacantRooms      int64 `json:"vacant_rooms"`
	MaintenanceRooms int64 `json:"maintenance_rooms"`
	ActiveContracts  int64 `json:"active_contracts"`
	TotalTenants     int64 `json:"total_tenants"`
}

type Dashboard struct {
	Rooms []DashboardRoom `json:"rooms"`
	Stats DashboardStats  `json:"stats"`
}

// PaidAmountRow feeds the income split; one row per payment of the month.
type PaidAmountRow struct {
	Type   string
	Status string
	Amount float64
}

type MonthRange struct {
	Start time.Time
	End   time.Time
}
