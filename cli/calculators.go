package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"fincalc/domain"
	"fincalc/report"
	"fincalc/service"
)

// outputFlags are shared by the calculator subcommands.
type outputFlags struct {
	raw   bool
	table bool
	out   io.Writer
}

func (o *outputFlags) setFlags(f *flag.FlagSet) {
	f.BoolVar(&o.raw, "raw", false, "Print plain markdown instead of rendering it")
	f.BoolVar(&o.table, "table", true, "Include the period by period table")
}

func (o *outputFlags) writer() io.Writer {
	if o.out == nil {
		return os.Stdout
	}
	return o.out
}

func (o *outputFlags) print(md string) subcommands.ExitStatus {
	if err := printMarkdown(o.writer(), md, o.raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering output: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func calculationFailed(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}

type gainsCmd struct {
	outputFlags
	initial   float64
	years     int
	annual    float64
	inflation float64
	ret       float64
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "project capital gains with inflation-adjusted contributions" }
func (*gainsCmd) Usage() string {
	return `fincalc gains [-initial <amount>] [-years <n>] [-annual <amount>] [-inflation <%>] [-return <%>]

  Projects an investment year by year. The annual investment grows with
  inflation after each year's contribution.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	l := loadLimits().CapitalGains
	f.Float64Var(&c.initial, "initial", l.InitialInvestment.Default, "Initial investment (₹)")
	f.IntVar(&c.years, "years", int(l.Years.Default), "Number of years")
	f.Float64Var(&c.annual, "annual", l.AnnualInvestment.Default, "Annual investment (₹)")
	f.Float64Var(&c.inflation, "inflation", l.InflationPercent.Default, "Inflation rate (%)")
	f.Float64Var(&c.ret, "return", l.ReturnPercent.Default, "Expected annual return (%)")
	c.setFlags(f)
}

func (c *gainsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := service.NewCapitalGainsService(nil, commandLogger())
	result, err := svc.CalculateCapitalGains(ctx, domain.CapitalGainsInput{
		InitialInvestment: c.initial,
		Years:             c.years,
		AnnualInvestment:  c.annual,
		InflationRate:     c.inflation / 100,
		ExpectedReturn:    c.ret / 100,
	})
	if err != nil {
		return calculationFailed(err)
	}

	var b strings.Builder
	if c.table {
		report.WriteCapitalGains(&b, result)
	} else {
		report.WriteSummary(&b, "Capital Gains", report.CapitalGainsMessages(result))
	}
	return c.print(b.String())
}

type emiCmd struct {
	outputFlags
	principal float64
	rate      float64
	years     int
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "compute a loan EMI and its amortization schedule" }
func (*emiCmd) Usage() string {
	return `fincalc emi [-principal <amount>] [-rate <%>] [-years <n>]

  Computes the equal monthly installment of a fixed-rate loan and the
  remaining principal month by month.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) {
	l := loadLimits().Loan
	f.Float64Var(&c.principal, "principal", l.Principal.Default, "Loan amount (₹)")
	f.Float64Var(&c.rate, "rate", l.RatePercent.Default, "Annual interest rate (%)")
	f.IntVar(&c.years, "years", int(l.Years.Default), "Loan tenure (years)")
	c.setFlags(f)
}

func (c *emiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := service.NewLoanService(nil, commandLogger())
	result, err := svc.CalculateLoan(ctx, domain.LoanInput{
		Principal:   c.principal,
		RatePercent: c.rate,
		Years:       c.years,
	})
	if err != nil {
		return calculationFailed(err)
	}

	var b strings.Builder
	if c.table {
		report.WriteLoan(&b, result)
	} else {
		report.WriteSummary(&b, "Loan EMI", report.LoanMessages(result))
	}
	return c.print(b.String())
}

type swpCmd struct {
	outputFlags
	initial    float64
	withdrawal float64
	years      int
	ret        float64
}

func (*swpCmd) Name() string     { return "swp" }
func (*swpCmd) Synopsis() string { return "simulate a systematic withdrawal plan" }
func (*swpCmd) Usage() string {
	return `fincalc swp [-initial <amount>] [-withdrawal <%>] [-years <n>] [-return <%>]

  Withdraws a fixed monthly amount, set from the initial investment, while
  the balance compounds. Stops early if the balance is depleted.
`
}

func (c *swpCmd) SetFlags(f *flag.FlagSet) {
	l := loadLimits().WithdrawalPlan
	f.Float64Var(&c.initial, "initial", l.InitialInvestment.Default, "Initial investment (₹)")
	f.Float64Var(&c.withdrawal, "withdrawal", l.WithdrawalPercent.Default, "Annual withdrawal rate (%)")
	f.IntVar(&c.years, "years", int(l.Years.Default), "Number of years")
	f.Float64Var(&c.ret, "return", l.ReturnPercent.Default, "Expected annual return (%)")
	c.setFlags(f)
}

func (c *swpCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := domain.WithdrawalPlanInput{
		InitialInvestment: c.initial,
		WithdrawalRate:    c.withdrawal / 100,
		Years:             c.years,
		ExpectedReturn:    c.ret / 100,
	}

	svc := service.NewWithdrawalPlanService(nil, commandLogger())
	result, err := svc.CalculateWithdrawalPlan(ctx, input)
	if err != nil {
		return calculationFailed(err)
	}

	var b strings.Builder
	if c.table {
		report.WriteWithdrawalPlan(&b, input, result)
	} else {
		report.WriteSummary(&b, "Systematic Withdrawal Plan (SWP)", report.WithdrawalPlanMessages(input, result))
	}
	return c.print(b.String())
}
