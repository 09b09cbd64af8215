// Package format renders rupee amounts with Indian digit grouping.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CurrencySymbol = "₹"
	Footnote       = "All calculations are in Indian Rupees (₹)"

	Thousand = 1_000
	Lakh     = 1_00_000
	Crore    = 1_00_00_000
)

// GroupDigits formats n as 12,34,567: the last three digits form one
// group and everything to their left is grouped in pairs.
func GroupDigits(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	groups := make([]string, 0, len(head)/2+2)
	if len(head)%2 == 1 {
		groups = append(groups, head[:1])
		head = head[1:]
	}
	for i := 0; i < len(head); i += 2 {
		groups = append(groups, head[i:i+2])
	}
	groups = append(groups, tail)

	return sign + strings.Join(groups, ",")
}

// DescribeAmount returns the grouped amount with a currency symbol and a
// magnitude label, e.g. "₹1,23,45,678 (1 Crore)". Amounts under a
// thousand, negatives included, carry no label.
func DescribeAmount(n int64) string {
	grouped := CurrencySymbol + GroupDigits(n)
	switch {
	case n >= Crore:
		return fmt.Sprintf("%s (%d Crore)", grouped, n/Crore)
	case n >= Lakh:
		return fmt.Sprintf("%s (%d Lakh)", grouped, n/Lakh)
	case n >= Thousand:
		return fmt.Sprintf("%s (%d Thousand)", grouped, n/Thousand)
	default:
		return grouped
	}
}
