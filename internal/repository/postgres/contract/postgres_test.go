package contract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/QuangTrungK15/motel-management/internal/db"
	contractdomain "github.com/QuangTrungK15/motel-management/internal/domain/contract"
	roomdomain "github.com/QuangTrungK15/motel-management/internal/domain/room"
	tenantdomain "github.com/QuangTrungK15/motel-management/internal/domain/tenant"
	contractrepo "github.com/QuangTrungK15/motel-management/internal/repository/postgres/contract"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedRoomAndTenant(t *testing.T, gdb *gorm.DB) (roomdomain.Room, tenantdomain.Tenant) {
	t.Helper()
	rm := roomdomain.Room{Number: 101, Name: "Room 101", Floor: 1, Rate: 3000000, MaxOccupants: 5, Status: roomdomain.StatusVacant}
	require.NoError(t, gdb.Create(&rm).Error)
	tn := tenantdomain.Tenant{FirstName: "Anh", LastName: "Tran", IDNumber: "123456789"}
	require.NoError(t, gdb.Create(&tn).Error)
	return rm, tn
}

func activeContract(rm roomdomain.Room, tn tenantdomain.Tenant) contractdomain.Contract {
	return contractdomain.Contract{
		RoomID:      rm.ID,
		TenantID:    tn.ID,
		MonthlyRent: 3000000,
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:      contractdomain.StatusActive,
	}
}

func TestCreateAndGetPreloadsAssociations(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	record := activeContract(rm, tn)
	record.Occupants = []contractdomain.Occupant{
		{FirstName: "Binh", LastName: "Le", IDNumber: "987654321"},
	}
	require.NoError(t, repo.Create(context.Background(), &record))

	loaded, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, rm.Number, loaded.Room.Number)
	assert.Equal(t, "Anh", loaded.Tenant.FirstName)
	require.Len(t, loaded.Occupants, 1)
	assert.Equal(t, record.ID, loaded.Occupants[0].ContractID)
}

func TestGetByIDMissing(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, contractdomain.ErrContractNotFound)
}

func TestEndStampsStatusAndDate(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	record := activeContract(rm, tn)
	require.NoError(t, repo.Create(context.Background(), &record))

	endedAt := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.End(context.Background(), record.ID, endedAt))

	loaded, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, contractdomain.StatusEnded, loaded.Status)
	require.NotNil(t, loaded.EndDate)
	assert.True(t, loaded.EndDate.Equal(endedAt))
}

func TestSecondActiveContractOnRoomIsRejected(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	tn2 := tenantdomain.Tenant{FirstName: "Binh", LastName: "Le"}
	require.NoError(t, gdb.Create(&tn2).Error)

	first := activeContract(rm, tn)
	require.NoError(t, repo.Create(context.Background(), &first))

	// The partial unique index allows a second contract only once the first
	// has ended.
	second := activeContract(rm, tn2)
	assert.Error(t, repo.Create(context.Background(), &second))

	require.NoError(t, repo.End(context.Background(), first.ID, time.Now().UTC()))
	third := activeContract(rm, tn2)
	assert.NoError(t, repo.Create(context.Background(), &third))
}

func TestSecondActiveContractForTenantIsRejected(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	rm2 := roomdomain.Room{Number: 102, Name: "Room 102", Floor: 1, Rate: 3000000, MaxOccupants: 5, Status: roomdomain.StatusVacant}
	require.NoError(t, gdb.Create(&rm2).Error)

	first := activeContract(rm, tn)
	require.NoError(t, repo.Create(context.Background(), &first))

	second := activeContract(rm2, tn)
	assert.Error(t, repo.Create(context.Background(), &second))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	boom := errors.New("boom")
	err := repo.Transaction(context.Background(), func(tx contractdomain.Repository) error {
		record := activeContract(rm, tn)
		if err := tx.Create(context.Background(), &record); err != nil {
			return err
		}
		if err := tx.UpdateRoomStatus(context.Background(), rm.ID, roomdomain.StatusOccupied); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, gdb.Model(&contractdomain.Contract{}).Count(&count).Error)
	assert.Zero(t, count)

	reloaded, err := repo.GetRoom(context.Background(), rm.ID)
	require.NoError(t, err)
	assert.Equal(t, roomdomain.StatusVacant, reloaded.Status)
}

func TestMoveInCandidates(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	rm2 := roomdomain.Room{Number: 102, Name: "Room 102", Floor: 1, Rate: 3000000, MaxOccupants: 5, Status: roomdomain.StatusVacant}
	require.NoError(t, gdb.Create(&rm2).Error)
	tn2 := tenantdomain.Tenant{FirstName: "Binh", LastName: "Le"}
	require.NoError(t, gdb.Create(&tn2).Error)

	record := activeContract(rm, tn)
	require.NoError(t, repo.Create(context.Background(), &record))
	require.NoError(t, repo.UpdateRoomStatus(context.Background(), rm.ID, roomdomain.StatusOccupied))

	rooms, err := repo.ListVacantRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, rm2.ID, rooms[0].ID)

	tenants, err := repo.ListTenantsWithoutActiveContract(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, tn2.ID, tenants[0].ID)
}

func TestListOrdersActiveFirst(t *testing.T) {
	gdb := setupTestDB(t)
	repo := contractrepo.NewPostgres(gdb)
	rm, tn := seedRoomAndTenant(t, gdb)

	ended := activeContract(rm, tn)
	ended.StartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), &ended))
	require.NoError(t, repo.End(context.Background(), ended.ID, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)))

	active := activeContract(rm, tn)
	require.NoError(t, repo.Create(context.Background(), &active))

	contracts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	assert.Equal(t, contractdomain.StatusActive, contracts[0].Status)
	assert.Equal(t, contractdomain.StatusEnded, contracts[1].Status)
}
