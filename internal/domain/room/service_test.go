package room

import (
	"context"
	"errors"
	"testing"
)

type fakeRoomRepo struct {
	rooms   map[uint]*Room
	updated *UpdateInput
}

func (r *fakeRoomRepo) List(ctx context.Context) ([]ListItem, error) {
	result := make([]ListItem, 0, len(r.rooms))
	for _, rm := range r.rooms {
		result = append(result, ListItem{Room: *rm})
	}
	return result, nil
}

func (r *fakeRoomRepo) GetByID(ctx context.Context, id uint) (*Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	copied := *rm
	return &copied, nil
}

func (r *fakeRoomRepo) Update(ctx context.Context, input UpdateInput) error {
	r.updated = &input
	return nil
}

func (r *fakeRoomRepo) StatusCounts(ctx context.Context) (StatusCounts, error) {
	return StatusCounts{}, nil
}

func TestUpdateAppliesEdit(t *testing.T) {
	repo := &fakeRoomRepo{rooms: map[uint]*Room{
		1: {ID: 1, Number: 101, Rate: 3000000, Status: StatusVacant},
	}}
	svc := NewService(repo)

	err := svc.Update(context.Background(), UpdateInput{
		ID: 1, Rate: 3200000, Status: StatusMaintenance, Notes: "repainting",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.updated == nil || repo.updated.Status != StatusMaintenance {
		t.Fatalf("expected update to reach the repository, got %+v", repo.updated)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	repo := &fakeRoomRepo{rooms: map[uint]*Room{1: {ID: 1}}}
	svc := NewService(repo)

	err := svc.Update(context.Background(), UpdateInput{ID: 1, Status: "demolished"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("invalid input must not reach the repository")
	}
}

func TestUpdateRejectsNegativeRate(t *testing.T) {
	repo := &fakeRoomRepo{rooms: map[uint]*Room{1: {ID: 1}}}
	svc := NewService(repo)

	err := svc.Update(context.Background(), UpdateInput{ID: 1, Status: StatusVacant, Rate: -1})
	if !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}

func TestUpdateMissingRoom(t *testing.T) {
	svc := NewService(&fakeRoomRepo{rooms: map[uint]*Room{}})

	err := svc.Update(context.Background(), UpdateInput{ID: 42, Status: StatusVacant})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
