package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBreakdown_InterState(t *testing.T) {
	tests := []struct {
		name              string
		counterpartyState string
	}{
		{"exact match", "Rajasthan"},
		{"upper case", "RAJASTHAN"},
		{"lower case", "rajasthan"},
		{"mixed case", "rAjAsThAn"},
		{"leading whitespace", "  Rajasthan"},
		{"trailing whitespace", "Rajasthan   "},
		{"both sides whitespace", "\tRajasthan \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(dec("1000"), "Gujarat", tt.counterpartyState)

			assert.True(t, b.IsInterState)
			assert.True(t, b.IGST.Equal(dec("180")), "igst = %s", b.IGST)
			assert.True(t, b.CGST.IsZero())
			assert.True(t, b.SGST.IsZero())
			assert.True(t, b.Total.Equal(dec("180")))
		})
	}
}

func TestComputeBreakdown_IntraState(t *testing.T) {
	tests := []struct {
		name              string
		counterpartyState string
	}{
		{"seller's own state", "Gujarat"},
		{"other state", "Maharashtra"},
		{"case variant of other state", "GUJARAT"},
		{"empty state falls through", ""},
		{"whitespace only falls through", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(dec("1000"), "Gujarat", tt.counterpartyState)

			assert.False(t, b.IsInterState)
			assert.True(t, b.IGST.IsZero())
			assert.True(t, b.CGST.Equal(dec("90")), "cgst = %s", b.CGST)
			assert.True(t, b.SGST.Equal(dec("90")), "sgst = %s", b.SGST)
			assert.True(t, b.Total.Equal(dec("180")))
		})
	}
}

func TestComputeBreakdown_TotalIsEighteenPercent(t *testing.T) {
	subtotals := []string{"0", "1", "99.99", "1300", "250000.50"}

	for _, s := range subtotals {
		subtotal := dec(s)
		b := ComputeBreakdown(subtotal, "Gujarat", "Kerala")
		assert.True(t, b.Total.Equal(subtotal.Mul(dec("0.18"))), "subtotal %s", s)
	}
}

func TestComputeBreakdown_ZeroSubtotal(t *testing.T) {
	b := ComputeBreakdown(decimal.Zero, "Gujarat", "Rajasthan")

	assert.True(t, b.IsInterState)
	assert.True(t, b.IGST.IsZero())
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.Total.IsZero())
}

func TestComputeBreakdown_HalvesSumToTotal(t *testing.T) {
	// Odd totals must split without drift.
	b := ComputeBreakdown(dec("333.35"), "Gujarat", "Kerala")
	assert.True(t, b.CGST.Add(b.SGST).Equal(b.Total))
	assert.True(t, b.CGST.Equal(b.SGST))
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	a := ComputeBreakdown(dec("1300"), "Gujarat", "Rajasthan")
	b := ComputeBreakdown(dec("1300"), "Gujarat", "Rajasthan")
	assert.Equal(t, a, b)
}

func TestComputeBreakdown_SellerStateDoesNotDriveBranch(t *testing.T) {
	// The same Rajasthan counterparty is inter-state regardless of seller.
	for _, seller := range []string{"Gujarat", "Rajasthan", ""} {
		b := ComputeBreakdown(dec("100"), seller, "Rajasthan")
		assert.True(t, b.IsInterState, "seller %q", seller)
	}
}

func TestComputeSubtotal(t *testing.T) {
	item := func(qty int64, rate string) entity.LineItem {
		return entity.LineItem{Quantity: qty, UnitRate: dec(rate)}
	}

	tests := []struct {
		name     string
		items    []entity.LineItem
		expected string
	}{
		{"empty list", nil, "0"},
		{"single item", []entity.LineItem{item(2, "100")}, "200"},
		{"multiple items", []entity.LineItem{item(2, "100"), item(1, "50")}, "250"},
		{"zero quantity contributes zero", []entity.LineItem{item(0, "100"), item(1, "50")}, "50"},
		{"zero rate contributes zero", []entity.LineItem{item(5, "0"), item(1, "50")}, "50"},
		{"fractional rates", []entity.LineItem{item(3, "10.50"), item(2, "0.25")}, "32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSubtotal(tt.items)
			assert.True(t, got.Equal(dec(tt.expected)), "subtotal = %s", got)
		})
	}
}

func TestLineItem_Recalculate(t *testing.T) {
	li := entity.LineItem{Quantity: 3, UnitRate: dec("12.50")}
	li.Recalculate()
	assert.True(t, li.LineTotal.Equal(dec("37.5")))

	li.Quantity = 4
	li.Recalculate()
	assert.True(t, li.LineTotal.Equal(dec("50")))
}
