package service

import (
	"math"

	"fincalc/domain"
)

func validateWithdrawalPlan(in domain.WithdrawalPlanInput) error {
	if err := checkAmount("initial investment", in.InitialInvestment, false); err != nil {
		return err
	}
	if err := checkRate("withdrawal rate", in.WithdrawalRate, 0, MaxAnnualRate); err != nil {
		return err
	}
	if err := checkYears(in.Years, 1); err != nil {
		return err
	}
	return checkRate("expected return", in.ExpectedReturn, MinAnnualRate, MaxAnnualRate)
}

// EquivalentMonthlyRate converts an annual return into the monthly rate
// that compounds to it over twelve months.
func EquivalentMonthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/MonthsPerYear) - 1
}

// SimulateWithdrawalPlan depletes the balance by a fixed monthly
// withdrawal derived from the initial investment. The simulation stops at
// the first month the balance would reach zero.
func SimulateWithdrawalPlan(in domain.WithdrawalPlanInput) (domain.WithdrawalPlanResult, error) {
	if err := validateWithdrawalPlan(in); err != nil {
		return domain.WithdrawalPlanResult{}, err
	}

	monthlyRate := EquivalentMonthlyRate(in.ExpectedReturn)
	monthlyWithdrawal := in.InitialInvestment * in.WithdrawalRate / MonthsPerYear
	months := in.Years * MonthsPerYear

	var t truncator
	balances := make([]int64, 0, months+1)
	balances = append(balances, t.amount("balance", in.InitialInvestment))

	balance := in.InitialInvestment
	depleted := false
	for month := 1; month <= months; month++ {
		next := balance*(1+monthlyRate) - monthlyWithdrawal
		balance = math.Max(0, next)
		balances = append(balances, t.amount("balance", balance))
		if t.err != nil {
			return domain.WithdrawalPlanResult{}, t.err
		}
		if next <= 0 {
			depleted = true
			break
		}
	}

	return domain.WithdrawalPlanResult{
		MonthlyWithdrawal: t.amount("monthly withdrawal", monthlyWithdrawal),
		FinalBalance:      balances[len(balances)-1],
		MonthsElapsed:     len(balances) - 1,
		Depleted:          depleted,
		Balances:          balances,
	}, nil
}
