package service

import (
	"context"

	"github.com/rs/zerolog"

	"fincalc/domain"
	"fincalc/repository"
)

type CapitalGainsService struct {
	cache *resultCache
	log   zerolog.Logger
}

// NewCapitalGainsService creates a CapitalGainsService. cache may be nil.
func NewCapitalGainsService(cache repository.CacheRepository, log zerolog.Logger) *CapitalGainsService {
	log = log.With().Str("service", "capital_gains").Logger()
	return &CapitalGainsService{cache: newResultCache(cache, log), log: log}
}

// CalculateCapitalGains validates input and returns the projection.
func (s *CapitalGainsService) CalculateCapitalGains(
	ctx context.Context,
	input domain.CapitalGainsInput,
) (domain.CapitalGainsResult, error) {

	if err := validateCapitalGains(input); err != nil {
		return domain.CapitalGainsResult{}, err
	}

	result, err := cached(ctx, s.cache, cacheKindCapitalGains, input, SimulateCapitalGains)
	if err != nil {
		return domain.CapitalGainsResult{}, err
	}

	s.log.Debug().
		Int("years", input.Years).
		Int64("current_value", result.CurrentValue).
		Msg("Capital gains calculated")
	return result, nil
}
