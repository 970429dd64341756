// Package gst implements the tax computation, amount-in-words and
// document-numbering rules for Indian GST invoices.
package gst

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

// Rate is the flat GST rate applied to every document subtotal.
var Rate = decimal.RequireFromString("0.18")

// InterStateTrigger is the counterparty state that selects IGST treatment.
// Only the counterparty state drives the branch; the seller state never
// participates in it.
const InterStateTrigger = "Rajasthan"

var two = decimal.NewFromInt(2)

// ComputeBreakdown returns the tax split for a subtotal. Counterparty states
// matching InterStateTrigger (case and surrounding whitespace ignored) get
// the full rate as IGST; every other value, including the empty string,
// falls through to the intra-state CGST+SGST halves. No rounding is applied
// to the halves.
func ComputeBreakdown(subtotal decimal.Decimal, sellerState, counterpartyState string) entity.GSTBreakdown {
	_ = sellerState // accepted for the record builder's call shape; unused by the branch

	total := subtotal.Mul(Rate)
	b := entity.GSTBreakdown{
		IGST:  decimal.Zero,
		CGST:  decimal.Zero,
		SGST:  decimal.Zero,
		Total: total,
	}

	if strings.EqualFold(strings.TrimSpace(counterpartyState), InterStateTrigger) {
		b.IsInterState = true
		b.IGST = total
		return b
	}

	half := total.Div(two)
	b.CGST = half
	b.SGST = half
	return b
}

// ComputeSubtotal sums quantity x unit rate over the items. Zero-quantity
// and zero-rate items contribute zero; they are not excluded here, only at
// submission-time validation.
func ComputeSubtotal(items []entity.LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitRate.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return subtotal
}
