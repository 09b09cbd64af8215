package service

import (
	"context"

	"github.com/rs/zerolog"

	"fincalc/domain"
	"fincalc/repository"
)

type LoanService struct {
	cache *resultCache
	log   zerolog.Logger
}

// NewLoanService creates a LoanService. cache may be nil.
func NewLoanService(cache repository.CacheRepository, log zerolog.Logger) *LoanService {
	log = log.With().Str("service", "loan").Logger()
	return &LoanService{cache: newResultCache(cache, log), log: log}
}

// CalculateLoan returns the EMI, totals and amortization schedule.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	result, err := cached(ctx, s.cache, cacheKindLoan, input, SimulateLoan)
	if err != nil {
		return domain.LoanResult{}, err
	}

	s.log.Debug().
		Float64("principal", input.Principal).
		Int64("emi", result.MonthlyPayment).
		Msg("Loan calculated")
	return result, nil
}
