package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/repository"
)

type MockCache struct {
	Data      map[string]string
	GetCalls  int
	SetCalls  int
	ForceFail bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.GetCalls++
	if m.ForceFail {
		return "", false
	}
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.SetCalls++
	if m.ForceFail {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}

func TestLoanService_CachesResult(t *testing.T) {
	ctx := context.Background()
	cache := NewMockCache()
	svc := NewLoanService(cache, zerolog.Nop())
	input := domain.LoanInput{Principal: 1_000_000, RatePercent: 8, Years: 20}

	first, err := svc.CalculateLoan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalls)
	assert.Len(t, cache.Data, 1)

	second, err := svc.CalculateLoan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.SetCalls, "second call should be served from cache")
	assert.Equal(t, first, second)

	direct, err := SimulateLoan(input)
	require.NoError(t, err)
	assert.Equal(t, direct, second)
}

func TestLoanService_InvalidInputSkipsCache(t *testing.T) {
	cache := NewMockCache()
	svc := NewLoanService(cache, zerolog.Nop())

	_, err := svc.CalculateLoan(context.Background(), domain.LoanInput{Principal: 1000, RatePercent: 0, Years: 1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Zero(t, cache.GetCalls)
	assert.Zero(t, cache.SetCalls)
}

func TestCapitalGainsService_CacheFailureIsNotFatal(t *testing.T) {
	cache := NewMockCache()
	cache.ForceFail = true
	svc := NewCapitalGainsService(cache, zerolog.Nop())

	result, err := svc.CalculateCapitalGains(context.Background(), defaultCapitalGainsInput())
	require.NoError(t, err)
	assert.Equal(t, int64(4716407), result.CurrentValue)
	assert.Equal(t, 1, cache.SetCalls)
}

func TestCapitalGainsService_DistinctInputsDistinctKeys(t *testing.T) {
	ctx := context.Background()
	cache := NewMockCache()
	svc := NewCapitalGainsService(cache, zerolog.Nop())

	input := defaultCapitalGainsInput()
	_, err := svc.CalculateCapitalGains(ctx, input)
	require.NoError(t, err)

	input.ExpectedReturn = 0.12
	_, err = svc.CalculateCapitalGains(ctx, input)
	require.NoError(t, err)

	assert.Len(t, cache.Data, 2)
}

func TestCapitalGainsService_CorruptEntryRecomputed(t *testing.T) {
	ctx := context.Background()
	cache := NewMockCache()
	svc := NewCapitalGainsService(cache, zerolog.Nop())
	input := defaultCapitalGainsInput()

	key, err := cacheKey(cacheKindCapitalGains, input)
	require.NoError(t, err)
	cache.Data[key] = "not msgpack"

	result, err := svc.CalculateCapitalGains(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(4716407), result.CurrentValue)
	assert.NotEqual(t, "not msgpack", cache.Data[key])
}

func TestWithdrawalPlanService_WithMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := repository.NewMemoryCache(time.Minute, 16)
	svc := NewWithdrawalPlanService(cache, zerolog.Nop())
	input := domain.WithdrawalPlanInput{InitialInvestment: 1_000_000, WithdrawalRate: 0.20, Years: 30, ExpectedReturn: 0.08}

	first, err := svc.CalculateWithdrawalPlan(ctx, input)
	require.NoError(t, err)
	second, err := svc.CalculateWithdrawalPlan(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, second.Depleted)
	assert.Equal(t, 1, cache.Len())
}

func TestWithdrawalPlanService_NilCache(t *testing.T) {
	svc := NewWithdrawalPlanService(nil, zerolog.Nop())
	result, err := svc.CalculateWithdrawalPlan(context.Background(), domain.WithdrawalPlanInput{
		InitialInvestment: 1_000_000,
		WithdrawalRate:    0.04,
		Years:             20,
		ExpectedReturn:    0.08,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2764293), result.FinalBalance)
}
