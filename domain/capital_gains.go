package domain

type CapitalGainsInput struct {
	InitialInvestment float64
	Years             int
	AnnualInvestment  float64
	InflationRate     float64 // fraction, 0.05 = 5%
	ExpectedReturn    float64 // fraction
}

// CapitalGainsResult series points carry (year, total invested, current value).
type CapitalGainsResult struct {
	TotalInvestment int64   `json:"total_investment"`
	CurrentValue    int64   `json:"current_value"`
	Gain            int64   `json:"gain"`
	Series          []Point `json:"series"`
}
