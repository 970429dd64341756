package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount with two decimal places and Indian digit
// grouping: the last three integer digits form one group, every pair after
// that another (12,34,567.00). Display-only; callers keep the decimal value
// for arithmetic.
func FormatINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	out := grouped + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate renders a date in the day-first convention used on printed
// invoices.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}
