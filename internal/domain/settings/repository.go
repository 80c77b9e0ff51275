package settings

import "context"

type Repository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	// UpdateAllRoomRates rewrites every room's rate when the default changes.
	UpdateAllRoomRates(ctx context.Context, rate float64) error
}

// Cache is an optional read-through cache for the full settings map.
type Cache interface {
	Get() (map[string]string, bool)
	Set(values map[string]string)
	Invalidate()
}

type noopCache struct{}

func (noopCache) Get() (map[string]string, bool) { return nil, false }
func (noopCache) Set(map[string]string)          {}
func (noopCache) Invalidate()                    {}
