package domain

type WithdrawalPlanInput struct {
	InitialInvestment float64
	WithdrawalRate    float64 // annual fraction of the initial investment
	Years             int
	ExpectedReturn    float64 // annual fraction
}

// WithdrawalPlanResult.Balances is indexed by month. It is shorter than
// Years*12+1 when the balance is depleted early.
type WithdrawalPlanResult struct {
	MonthlyWithdrawal int64   `json:"monthly_withdrawal"`
	FinalBalance      int64   `json:"final_balance"`
	MonthsElapsed     int     `json:"months_elapsed"`
	Depleted          bool    `json:"depleted"`
	Balances          []int64 `json:"balances"`
}
