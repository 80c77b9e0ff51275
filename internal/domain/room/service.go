package room

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a manual edit of rate, status and notes. This is the only
// path besides move-in/move-out that touches room status; it is how rooms
// enter and leave maintenance.
func (s *Service) Update(ctx context.Context, input UpdateInput) error {
	if !input.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, input.Status)
	}
	if input.Rate < 0 {
		return ErrInvalidRate
	}

	if _, err := s.repo.GetByID(ctx, input.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, input)
}

func (s *Service) StatusCounts(ctx context.Context) (StatusCounts, error) {
	return s.repo.StatusCounts(ctx)
}
