package service

import "fincalc/domain"

func validateCapitalGains(in domain.CapitalGainsInput) error {
	if err := checkAmount("initial investment", in.InitialInvestment, true); err != nil {
		return err
	}
	// Zero years is a projection with no compounding step: only period 0.
	if err := checkYears(in.Years, 0); err != nil {
		return err
	}
	if err := checkAmount("annual investment", in.AnnualInvestment, true); err != nil {
		return err
	}
	if err := checkRate("inflation rate", in.InflationRate, MinAnnualRate, MaxAnnualRate); err != nil {
		return err
	}
	return checkRate("expected return", in.ExpectedReturn, MinAnnualRate, MaxAnnualRate)
}

// SimulateCapitalGains projects an investment year by year. The annual
// contribution is added before growth and escalated by inflation after it,
// so year 1 uses the contribution as given.
func SimulateCapitalGains(in domain.CapitalGainsInput) (domain.CapitalGainsResult, error) {
	if err := validateCapitalGains(in); err != nil {
		return domain.CapitalGainsResult{}, err
	}

	totalInvestment := in.InitialInvestment
	currentValue := in.InitialInvestment
	contribution := in.AnnualInvestment

	var t truncator
	series := make([]domain.Point, 0, in.Years+1)
	series = append(series, domain.Point{
		Period: 0,
		A:      t.amount("total investment", totalInvestment),
		B:      t.amount("current value", currentValue),
	})

	for year := 1; year <= in.Years; year++ {
		totalInvestment += contribution
		currentValue = (currentValue + contribution) * (1 + in.ExpectedReturn)
		contribution *= 1 + in.InflationRate

		series = append(series, domain.Point{
			Period: year,
			A:      t.amount("total investment", totalInvestment),
			B:      t.amount("current value", currentValue),
		})
		if t.err != nil {
			return domain.CapitalGainsResult{}, t.err
		}
	}

	result := domain.CapitalGainsResult{
		TotalInvestment: t.amount("total investment", totalInvestment),
		CurrentValue:    t.amount("current value", currentValue),
		Gain:            t.amount("gain", currentValue-totalInvestment),
		Series:          series,
	}
	if t.err != nil {
		return domain.CapitalGainsResult{}, t.err
	}
	return result, nil
}
