package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/config"
	"fincalc/domain"
	"fincalc/service"
)

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newLoanHandler(limits *config.Limits) *LoanHandler {
	return NewLoanHandler(service.NewLoanService(nil, zerolog.Nop()), limits, zerolog.Nop())
}

func TestCalculateLoanHandler_OK(t *testing.T) {
	handler := newLoanHandler(nil)

	req := newJSONRequest(http.MethodPost, "/api/loan", `{
		"principal": 1000000,
		"rate_percent": 8,
		"years": 20
	}`)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp CalculationResponse[domain.LoanResult]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(8364), resp.Result.MonthlyPayment)
	assert.Len(t, resp.Result.Schedule, 241)
	assert.Equal(t, "Monthly EMI: ₹8,364 (8 Thousand)", resp.Messages[0])
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {
	handler := newLoanHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/loan", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateLoanHandler_UnsupportedMediaType(t *testing.T) {
	handler := newLoanHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/loan", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {
	handler := newLoanHandler(nil)

	tests := map[string]string{
		"malformed json": `{invalid-json}`,
		"unknown field":  `{"monto": 10000, "rate_percent": 8, "years": 1}`,
		"zero rate":      `{"principal": 10000, "rate_percent": 0, "years": 1}`,
		"zero years":     `{"principal": 10000, "rate_percent": 8, "years": 0}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CalculateLoan(w, newJSONRequest(http.MethodPost, "/api/loan", body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCalculateLoanHandler_StrictLimits(t *testing.T) {
	handler := newLoanHandler(config.DefaultLimits())

	w := httptest.NewRecorder()
	handler.CalculateLoan(w, newJSONRequest(http.MethodPost, "/api/loan", `{"principal": 5000, "rate_percent": 8, "years": 20}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "principal")

	w = httptest.NewRecorder()
	handler.CalculateLoan(w, newJSONRequest(http.MethodPost, "/api/loan", `{"principal": 50000, "rate_percent": 8, "years": 20}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCalculateCapitalGainsHandler_PercentInputs(t *testing.T) {
	handler := NewCapitalGainsHandler(service.NewCapitalGainsService(nil, zerolog.Nop()), nil, zerolog.Nop())

	w := httptest.NewRecorder()
	handler.CalculateCapitalGains(w, newJSONRequest(http.MethodPost, "/api/capital-gains", `{
		"initial_investment": 1000000,
		"years": 10,
		"annual_investment": 100000,
		"inflation_percent": 5,
		"return_percent": 10
	}`))

	require.Equal(t, http.StatusOK, w.Code)

	var resp CalculationResponse[domain.CapitalGainsResult]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2257789), resp.Result.TotalInvestment)
	assert.Equal(t, int64(4716407), resp.Result.CurrentValue)
	assert.Equal(t, int64(2458618), resp.Result.Gain)
	assert.Len(t, resp.Result.Series, 11)
	assert.Len(t, resp.Messages, 3)
}

func TestCalculateCapitalGainsHandler_StrictLimits(t *testing.T) {
	handler := NewCapitalGainsHandler(service.NewCapitalGainsService(nil, zerolog.Nop()), config.DefaultLimits(), zerolog.Nop())

	w := httptest.NewRecorder()
	handler.CalculateCapitalGains(w, newJSONRequest(http.MethodPost, "/api/capital-gains", `{
		"initial_investment": 1000000,
		"years": 10,
		"annual_investment": 100000,
		"inflation_percent": 5,
		"return_percent": 45
	}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCalculateWithdrawalPlanHandler_Depleted(t *testing.T) {
	handler := NewWithdrawalPlanHandler(service.NewWithdrawalPlanService(nil, zerolog.Nop()), config.DefaultLimits(), zerolog.Nop())

	w := httptest.NewRecorder()
	handler.CalculateWithdrawalPlan(w, newJSONRequest(http.MethodPost, "/api/swp", `{
		"initial_investment": 1000000,
		"withdrawal_percent": 20,
		"years": 30,
		"return_percent": 8
	}`))

	require.Equal(t, http.StatusOK, w.Code)

	var resp CalculationResponse[domain.WithdrawalPlanResult]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Depleted)
	assert.Equal(t, int64(16666), resp.Result.MonthlyWithdrawal)
	assert.Equal(t, "Final Balance after 30 years: ₹0", resp.Messages[2])
}
