package settings

import (
	"context"
	"strconv"
	"strings"
)

type Service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cache: noopCache{}}
}

func NewServiceWithCache(repo Repository, cache Cache) *Service {
	if cache == nil {
		return NewService(repo)
	}
	return &Service{repo: repo, cache: cache}
}

func (s *Service) All(ctx context.Context) (map[string]string, error) {
	if values, ok := s.cache.Get(); ok {
		return values, nil
	}

	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(values)
	return values, nil
}

func (s *Service) SaveMotelInfo(ctx context.Context, input MotelInfoInput) error {
	updates := map[string]string{
		KeyMotelName:    strings.TrimSpace(input.Name),
		KeyMotelAddress: strings.TrimSpace(input.Address),
		KeyMotelPhone:   strings.TrimSpace(input.Phone),
	}
	for key, value := range updates {
		if err := s.repo.Set(ctx, key, value); err != nil {
			return err
		}
	}

	s.cache.Invalidate()
	return nil
}

// SaveRates stores the rate settings and, when a default room rate is given,
// rewrites every room's rate to it, matching the original settings behavior.
func (s *Service) SaveRates(ctx context.Context, input RatesInput) error {
	roomRate := strings.TrimSpace(input.DefaultRoomRate)
	if roomRate != "" {
		if _, err := strconv.ParseFloat(roomRate, 64); err != nil {
			return ErrInvalidRate
		}
	}

	updates := map[string]string{
		KeyDefaultRoomRate: roomRate,
		KeyElectricRate:    strings.TrimSpace(input.ElectricRate),
		KeyWaterRate:       strings.TrimSpace(input.WaterRate),
		KeyCurrency:        strings.TrimSpace(input.Currency),
	}
	for key, value := range updates {
		if err := s.repo.Set(ctx, key, value); err != nil {
			return err
		}
	}

	s.cache.Invalidate()

	if roomRate != "" {
		rate, _ := strconv.ParseFloat(roomRate, 64)
		return s.repo.UpdateAllRoomRates(ctx, rate)
	}
	return nil
}

// Rates reads the utility rates, falling back to the shipped defaults when a
// key is absent or not numeric. Implements the rates provider the utility
// calculator depends on.
func (s *Service) Rates(ctx context.Context) (Rates, error) {
	values, err := s.All(ctx)
	if err != nil {
		return Rates{}, err
	}

	return Rates{
		Electric: parseRate(values[KeyElectricRate], DefaultElectricRate),
		Water:    parseRate(values[KeyWaterRate], DefaultWaterRate),
	}, nil
}

func parseRate(value string, fallback float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
