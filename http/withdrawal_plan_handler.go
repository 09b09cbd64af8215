package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"fincalc/config"
	"fincalc/domain"
	"fincalc/report"
	"fincalc/service"
)

type WithdrawalPlanRequest struct {
	InitialInvestment float64 `json:"initial_investment"`
	WithdrawalPercent float64 `json:"withdrawal_percent"`
	Years             int     `json:"years"`
	ReturnPercent     float64 `json:"return_percent"`
}

func (req WithdrawalPlanRequest) check(l *config.WithdrawalPlanLimits) error {
	if err := l.InitialInvestment.Check("initial_investment", req.InitialInvestment); err != nil {
		return err
	}
	if err := l.WithdrawalPercent.Check("withdrawal_percent", req.WithdrawalPercent); err != nil {
		return err
	}
	if err := l.Years.Check("years", float64(req.Years)); err != nil {
		return err
	}
	return l.ReturnPercent.Check("return_percent", req.ReturnPercent)
}

func (req WithdrawalPlanRequest) input() domain.WithdrawalPlanInput {
	return domain.WithdrawalPlanInput{
		InitialInvestment: req.InitialInvestment,
		WithdrawalRate:    req.WithdrawalPercent / 100,
		Years:             req.Years,
		ExpectedReturn:    req.ReturnPercent / 100,
	}
}

type WithdrawalPlanHandler struct {
	service *service.WithdrawalPlanService
	limits  *config.Limits
	log     zerolog.Logger
}

func NewWithdrawalPlanHandler(service *service.WithdrawalPlanService, limits *config.Limits, log zerolog.Logger) *WithdrawalPlanHandler {
	return &WithdrawalPlanHandler{
		service: service,
		limits:  limits,
		log:     log.With().Str("handler", "swp").Logger(),
	}
}

func (h *WithdrawalPlanHandler) CalculateWithdrawalPlan(w http.ResponseWriter, r *http.Request) {
	var req WithdrawalPlanRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	if h.limits != nil {
		if err := req.check(&h.limits.WithdrawalPlan); err != nil {
			writeCalculationError(w, h.log, err)
			return
		}
	}

	input := req.input()
	result, err := h.service.CalculateWithdrawalPlan(r.Context(), input)
	if err != nil {
		writeCalculationError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, CalculationResponse[domain.WithdrawalPlanResult]{
		Messages: report.WithdrawalPlanMessages(input, result),
		Result:   result,
	})
}
