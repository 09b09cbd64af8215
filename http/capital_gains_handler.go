package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"fincalc/config"
	"fincalc/domain"
	"fincalc/report"
	"fincalc/service"
)

type CapitalGainsRequest struct {
	InitialInvestment float64 `json:"initial_investment"`
	Years             int     `json:"years"`
	AnnualInvestment  float64 `json:"annual_investment"`
	InflationPercent  float64 `json:"inflation_percent"`
	ReturnPercent     float64 `json:"return_percent"`
}

func (req CapitalGainsRequest) check(l *config.CapitalGainsLimits) error {
	checks := []struct {
		name  string
		field config.Field
		value float64
	}{
		{"initial_investment", l.InitialInvestment, req.InitialInvestment},
		{"years", l.Years, float64(req.Years)},
		{"annual_investment", l.AnnualInvestment, req.AnnualInvestment},
		{"inflation_percent", l.InflationPercent, req.InflationPercent},
		{"return_percent", l.ReturnPercent, req.ReturnPercent},
	}
	for _, c := range checks {
		if err := c.field.Check(c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

func (req CapitalGainsRequest) input() domain.CapitalGainsInput {
	return domain.CapitalGainsInput{
		InitialInvestment: req.InitialInvestment,
		Years:             req.Years,
		AnnualInvestment:  req.AnnualInvestment,
		InflationRate:     req.InflationPercent / 100,
		ExpectedReturn:    req.ReturnPercent / 100,
	}
}

type CapitalGainsHandler struct {
	service *service.CapitalGainsService
	limits  *config.Limits
	log     zerolog.Logger
}

// NewCapitalGainsHandler creates the handler. A non-nil limits table
// makes out-of-range inputs fail with 422.
func NewCapitalGainsHandler(service *service.CapitalGainsService, limits *config.Limits, log zerolog.Logger) *CapitalGainsHandler {
	return &CapitalGainsHandler{
		service: service,
		limits:  limits,
		log:     log.With().Str("handler", "capital_gains").Logger(),
	}
}

func (h *CapitalGainsHandler) CalculateCapitalGains(w http.ResponseWriter, r *http.Request) {
	var req CapitalGainsRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	if h.limits != nil {
		if err := req.check(&h.limits.CapitalGains); err != nil {
			writeCalculationError(w, h.log, err)
			return
		}
	}

	result, err := h.service.CalculateCapitalGains(r.Context(), req.input())
	if err != nil {
		writeCalculationError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, CalculationResponse[domain.CapitalGainsResult]{
		Messages: report.CapitalGainsMessages(result),
		Result:   result,
	})
}
