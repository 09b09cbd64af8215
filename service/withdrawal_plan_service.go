package service

import (
	"context"

	"github.com/rs/zerolog"

	"fincalc/domain"
	"fincalc/repository"
)

type WithdrawalPlanService struct {
	cache *resultCache
	log   zerolog.Logger
}

// NewWithdrawalPlanService creates a WithdrawalPlanService. cache may be nil.
func NewWithdrawalPlanService(cache repository.CacheRepository, log zerolog.Logger) *WithdrawalPlanService {
	log = log.With().Str("service", "swp").Logger()
	return &WithdrawalPlanService{cache: newResultCache(cache, log), log: log}
}

// CalculateWithdrawalPlan returns the monthly balance path of the plan.
func (s *WithdrawalPlanService) CalculateWithdrawalPlan(
	ctx context.Context,
	input domain.WithdrawalPlanInput,
) (domain.WithdrawalPlanResult, error) {

	if err := validateWithdrawalPlan(input); err != nil {
		return domain.WithdrawalPlanResult{}, err
	}

	result, err := cached(ctx, s.cache, cacheKindWithdrawalPlan, input, SimulateWithdrawalPlan)
	if err != nil {
		return domain.WithdrawalPlanResult{}, err
	}

	if result.Depleted {
		s.log.Info().
			Int("months", result.MonthsElapsed).
			Int("years", input.Years).
			Msg("Withdrawal plan depletes before the end of the horizon")
	}
	return result, nil
}
