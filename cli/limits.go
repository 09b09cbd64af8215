package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"fincalc/config"
	"fincalc/format"
)

type limitsCmd struct {
	outputFlags
}

func (*limitsCmd) Name() string     { return "limits" }
func (*limitsCmd) Synopsis() string { return "show calculator input ranges and defaults" }
func (*limitsCmd) Usage() string {
	return `fincalc limits [-raw]

  Prints the min, max, default and step of every calculator input.
`
}

func (c *limitsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of rendering it")
}

func (c *limitsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	writeLimits(&b, loadLimits())
	return c.print(b.String())
}

func writeLimits(b *strings.Builder, l *config.Limits) {
	b.WriteString("# Calculator inputs\n\n")
	b.WriteString("| Field | Min | Max | Default | Step |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")

	rows := []struct {
		name  string
		field config.Field
	}{
		{"Capital Gains: initial investment", l.CapitalGains.InitialInvestment},
		{"Capital Gains: years", l.CapitalGains.Years},
		{"Capital Gains: annual investment", l.CapitalGains.AnnualInvestment},
		{"Capital Gains: inflation %", l.CapitalGains.InflationPercent},
		{"Capital Gains: return %", l.CapitalGains.ReturnPercent},
		{"Loan: principal", l.Loan.Principal},
		{"Loan: rate %", l.Loan.RatePercent},
		{"Loan: tenure years", l.Loan.Years},
		{"SWP: initial investment", l.WithdrawalPlan.InitialInvestment},
		{"SWP: withdrawal %", l.WithdrawalPlan.WithdrawalPercent},
		{"SWP: years", l.WithdrawalPlan.Years},
		{"SWP: return %", l.WithdrawalPlan.ReturnPercent},
	}
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n", r.name,
			formatLimit(r.field.Min), formatLimit(r.field.Max), formatLimit(r.field.Default), formatLimit(r.field.Step))
	}
	fmt.Fprintf(b, "\n_%s_\n", format.Footnote)
}

// formatLimit groups whole amounts and keeps one decimal for percentages.
func formatLimit(v float64) string {
	if v == float64(int64(v)) {
		return format.GroupDigits(int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
