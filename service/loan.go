package service

import (
	"math"

	"fincalc/domain"
)

func validateLoan(in domain.LoanInput) error {
	if err := checkAmount("principal", in.Principal, false); err != nil {
		return err
	}
	if err := checkFinite("rate", in.RatePercent); err != nil {
		return err
	}
	if in.RatePercent <= 0 {
		return invalid("rate must be greater than zero")
	}
	if in.RatePercent > MaxInterestRate {
		return invalid("rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	return checkYears(in.Years, 1)
}

// MonthlyInstallment returns the fixed EMI that amortizes principal over
// months at the given monthly rate.
func MonthlyInstallment(principal, monthlyRate float64, months int) float64 {
	growth := math.Pow(1+monthlyRate, float64(months))
	return principal * monthlyRate * growth / (growth - 1)
}

// SimulateLoan computes the EMI and the month by month amortization
// schedule. Month 0 holds the full principal.
func SimulateLoan(in domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoan(in); err != nil {
		return domain.LoanResult{}, err
	}

	monthlyRate := in.RatePercent / (MonthsPerYear * 100)
	months := in.Years * MonthsPerYear
	emi := MonthlyInstallment(in.Principal, monthlyRate, months)
	totalPayment := emi * float64(months)
	totalInterest := totalPayment - in.Principal

	// Rates too small to move 1+r, or too large over a long tenure, leave
	// the EMI without a usable value.
	var t truncator
	result := domain.LoanResult{
		MonthlyPayment: t.amount("monthly payment", emi),
		TotalPayment:   t.amount("total payment", totalPayment),
		TotalInterest:  t.amount("total interest", totalInterest),
	}
	if t.err != nil {
		return domain.LoanResult{}, t.err
	}

	schedule := make([]domain.Point, 0, months+1)
	schedule = append(schedule, domain.Point{Period: 0, A: t.amount("principal", in.Principal), B: 0})

	remaining := in.Principal
	for month := 1; month <= months; month++ {
		interest := remaining * monthlyRate
		remaining -= emi - interest
		// Cumulative figure as charted: principal minus what is still owed.
		paid := in.Principal - remaining

		schedule = append(schedule, domain.Point{
			Period: month,
			A:      t.amount("remaining principal", remaining),
			B:      t.amount("principal repaid", paid),
		})
		if t.err != nil {
			return domain.LoanResult{}, t.err
		}
	}

	result.Schedule = schedule
	return result, nil
}
