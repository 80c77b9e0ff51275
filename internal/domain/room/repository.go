package room

import "context"

type Repository interface {
	List(ctx context.Context) ([]ListItem, error)
	GetByID(ctx context.Context, id uint) (*Room, error)
	Update(ctx context.Context, input UpdateInput) error
	StatusCounts(ctx context.Context) (StatusCounts, error)
}
