package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"fincalc/config"
	"fincalc/domain"
	"fincalc/report"
	"fincalc/service"
)

type LoanRequest struct {
	Principal   float64 `json:"principal"`
	RatePercent float64 `json:"rate_percent"`
	Years       int     `json:"years"`
}

func (req LoanRequest) check(l *config.LoanLimits) error {
	if err := l.Principal.Check("principal", req.Principal); err != nil {
		return err
	}
	if err := l.RatePercent.Check("rate_percent", req.RatePercent); err != nil {
		return err
	}
	return l.Years.Check("years", float64(req.Years))
}

type LoanHandler struct {
	service *service.LoanService
	limits  *config.Limits
	log     zerolog.Logger
}

func NewLoanHandler(service *service.LoanService, limits *config.Limits, log zerolog.Logger) *LoanHandler {
	return &LoanHandler{
		service: service,
		limits:  limits,
		log:     log.With().Str("handler", "loan").Logger(),
	}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	if h.limits != nil {
		if err := req.check(&h.limits.Loan); err != nil {
			writeCalculationError(w, h.log, err)
			return
		}
	}

	// The loan formula takes the rate in percent.
	result, err := h.service.CalculateLoan(r.Context(), domain.LoanInput{
		Principal:   req.Principal,
		RatePercent: req.RatePercent,
		Years:       req.Years,
	})
	if err != nil {
		writeCalculationError(w, h.log, err)
		return
	}

	writeJSON(w, h.log, CalculationResponse[domain.LoanResult]{
		Messages: report.LoanMessages(result),
		Result:   result,
	})
}
