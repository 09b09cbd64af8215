package service

const (
	MonthsPerYear = 12

	// Hard ceilings, well above the input controls, that keep a single
	// request bounded.
	MaxYears  = 100
	MaxAmount = 1_000_000_000_000.0

	// MaxInterestRate is the loan rate ceiling, in percent per year.
	MaxInterestRate = 1000.0
	// Annual returns, inflation and withdrawal rates are fractions; -1 is a
	// total loss and 10 is 1000% a year.
	MinAnnualRate = -1.0
	MaxAnnualRate = 10.0

	// LoanScheduleTolerance bounds how far the last remaining principal may
	// drift below zero from float error.
	LoanScheduleTolerance = 1e-4

	cacheKindCapitalGains   = "capital_gains"
	cacheKindLoan           = "loan"
	cacheKindWithdrawalPlan = "swp"
)
