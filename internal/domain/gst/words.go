package gst

import "strings"

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teenWords = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords converts a whole-rupee amount into English words using the
// Indian numbering system (crore = 1,00,00,000; lakh = 1,00,000), suffixed
// with "Rupees Only". Paise are outside this converter's domain: callers
// pass pre-rounded integral rupees.
func AmountInWords(amount int64) string {
	if amount == 0 {
		return "Zero Rupees Only"
	}
	return amountBody(amount) + " Rupees Only"
}

// amountBody spells a positive amount without the suffix. The crore count
// can itself exceed 999 (a thousand crore and beyond), so it re-enters the
// same decomposition rather than the sub-thousand helper.
func amountBody(amount int64) string {
	crores := amount / 10000000
	lakhs := (amount % 10000000) / 100000
	thousands := (amount % 100000) / 1000
	remainder := amount % 1000

	var sb strings.Builder
	if crores > 0 {
		sb.WriteString(amountBody(crores))
		sb.WriteString(" Crore ")
	}
	if lakhs > 0 {
		sb.WriteString(hundredsInWords(lakhs))
		sb.WriteString(" Lakh ")
	}
	if thousands > 0 {
		sb.WriteString(hundredsInWords(thousands))
		sb.WriteString(" Thousand ")
	}
	if remainder > 0 {
		sb.WriteString(hundredsInWords(remainder))
	}

	return strings.TrimSpace(sb.String())
}

// hundredsInWords spells a value below 1000. Teens are irregular and come
// from a direct lookup.
func hundredsInWords(n int64) string {
	switch {
	case n >= 100:
		rest := n % 100
		if rest == 0 {
			return onesWords[n/100] + " Hundred"
		}
		return onesWords[n/100] + " Hundred " + hundredsInWords(rest)
	case n >= 20:
		if n%10 == 0 {
			return tensWords[n/10]
		}
		return tensWords[n/10] + " " + onesWords[n%10]
	case n >= 10:
		return teenWords[n-10]
	default:
		return onesWords[n]
	}
}
