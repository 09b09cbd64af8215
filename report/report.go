// Package report turns calculator results into the messages and tables
// shown to users.
package report

import (
	"fmt"
	"io"
	"strconv"

	"fincalc/domain"
	"fincalc/format"
)

// CapitalGainsMessages returns the three summary lines of a projection.
func CapitalGainsMessages(r domain.CapitalGainsResult) []string {
	return []string{
		"Total Investment: " + format.DescribeAmount(r.TotalInvestment),
		"Current Value: " + format.DescribeAmount(r.CurrentValue),
		"Capital Gain: " + format.DescribeAmount(r.Gain),
	}
}

func LoanMessages(r domain.LoanResult) []string {
	return []string{
		"Monthly EMI: " + format.DescribeAmount(r.MonthlyPayment),
		"Total Payment: " + format.DescribeAmount(r.TotalPayment),
		"Total Interest: " + format.DescribeAmount(r.TotalInterest),
	}
}

// WithdrawalPlanMessages needs the inputs because the headline repeats
// the initial investment and the horizon.
func WithdrawalPlanMessages(in domain.WithdrawalPlanInput, r domain.WithdrawalPlanResult) []string {
	return []string{
		"Initial Investment: " + format.DescribeAmount(domain.Truncate(in.InitialInvestment)),
		"Monthly Withdrawal: " + format.DescribeAmount(r.MonthlyWithdrawal),
		fmt.Sprintf("Final Balance after %d years: %s", in.Years, format.DescribeAmount(r.FinalBalance)),
	}
}

// YearOf converts a month index to the fractional year used on charts.
func YearOf(month int) float64 {
	return float64(month) / 12
}

func WriteCapitalGains(w io.Writer, r domain.CapitalGainsResult) {
	fmt.Fprintln(w, "# Capital Gains")
	fmt.Fprintln(w)
	writeMessages(w, CapitalGainsMessages(r))
	fmt.Fprintln(w, "| Year | Total Investment | Current Value |")
	fmt.Fprintln(w, "|---:|---:|---:|")
	for _, p := range r.Series {
		fmt.Fprintf(w, "| %d | %s | %s |\n", p.Period, format.GroupDigits(p.A), format.GroupDigits(p.B))
	}
	writeFootnote(w)
}

func WriteLoan(w io.Writer, r domain.LoanResult) {
	fmt.Fprintln(w, "# Loan EMI")
	fmt.Fprintln(w)
	writeMessages(w, LoanMessages(r))
	fmt.Fprintln(w, "| Month | Year | Remaining Principal | Interest Paid |")
	fmt.Fprintln(w, "|---:|---:|---:|---:|")
	for _, p := range r.Schedule {
		fmt.Fprintf(w, "| %d | %s | %s | %s |\n", p.Period, formatYear(p.Period), format.GroupDigits(p.A), format.GroupDigits(p.B))
	}
	writeFootnote(w)
}

func WriteWithdrawalPlan(w io.Writer, in domain.WithdrawalPlanInput, r domain.WithdrawalPlanResult) {
	fmt.Fprintln(w, "# Systematic Withdrawal Plan (SWP)")
	fmt.Fprintln(w)
	writeMessages(w, WithdrawalPlanMessages(in, r))
	if r.Depleted {
		fmt.Fprintf(w, "> Balance depleted after %d months.\n\n", r.MonthsElapsed)
	}
	fmt.Fprintln(w, "| Month | Year | Balance |")
	fmt.Fprintln(w, "|---:|---:|---:|")
	for month, balance := range r.Balances {
		fmt.Fprintf(w, "| %d | %s | %s |\n", month, formatYear(month), format.GroupDigits(balance))
	}
	writeFootnote(w)
}

// WriteSummary writes only the messages, without the series table.
func WriteSummary(w io.Writer, title string, messages []string) {
	fmt.Fprintf(w, "# %s\n\n", title)
	writeMessages(w, messages)
	writeFootnote(w)
}

func writeMessages(w io.Writer, messages []string) {
	for _, m := range messages {
		fmt.Fprintf(w, "- %s\n", m)
	}
	fmt.Fprintln(w)
}

func writeFootnote(w io.Writer) {
	fmt.Fprintf(w, "\n_%s_\n", format.Footnote)
}

func formatYear(month int) string {
	return strconv.FormatFloat(YearOf(month), 'f', 2, 64)
}
