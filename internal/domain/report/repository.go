package report

import (
	"context"

	"github.com/QuangTrungK15/motel-management/internal/domain/room"
)

type Repository interface {
	ListPaymentAmounts(ctx context.Context, month string) ([]PaidAmountRow, error)
	ListUnpaid(ctx context.Context) ([]UnpaidRow, error)
	RoomStatusCounts(ctx context.Context) (room.StatusCounts, error)
	// CountRoomsUnderContract counts distinct rooms whose contract overlaps
	// the given range.
	CountRoomsUnderContract(ctx context.Context, r MonthRange) (int64, error)
	UtilityTotal(ctx context.Context, month string) (float64, error)
	CountActiveContracts(ctx context.Context) (int64, error)
	CountTenants(ctx context.Context) (int64, error)
	ListDashboardRooms(ctx context.Context) ([]DashboardRoom, error)
}
