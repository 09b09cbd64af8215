package domain

type LoanInput struct {
	Principal   float64
	RatePercent float64 // annual, 8.0 = 8%
	Years       int
}

// LoanResult series points carry (month, remaining principal, principal
// minus remaining).
type LoanResult struct {
	MonthlyPayment int64   `json:"monthly_payment"`
	TotalPayment   int64   `json:"total_payment"`
	TotalInterest  int64   `json:"total_interest"`
	Schedule       []Point `json:"schedule"`
}
