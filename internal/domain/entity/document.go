package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes sales invoices from purchase bills. The two
// share a structure and differ only in the counterparty role and the
// numbering label.
type DocumentKind string

const (
	KindInvoice      DocumentKind = "invoice"
	KindPurchaseBill DocumentKind = "purchase_bill"
)

// Status constants for Document
const (
	StatusUnpaid  = "UNPAID"
	StatusPaid    = "PAID"
	StatusOverdue = "OVERDUE"
)

// LineItem represents a billed line on an invoice or purchase bill.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	TaxCode     string          `json:"tax_code"` // HSN/SAC classification
	Quantity    int64           `json:"quantity"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Recalculate refreshes LineTotal from Quantity and UnitRate. It must run
// after every quantity or rate edit, before the item is summed.
func (li *LineItem) Recalculate() {
	li.LineTotal = li.UnitRate.Mul(decimal.NewFromInt(li.Quantity))
}

// GSTBreakdown is the tax split for a document. Exactly one of the two
// branches carries the tax: IGST for inter-state, CGST+SGST for intra-state.
type GSTBreakdown struct {
	IsInterState bool            `json:"is_inter_state"`
	IGST         decimal.Decimal `json:"igst"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	Total        decimal.Decimal `json:"total"`
}

// Document represents a sales invoice or purchase bill owned by one account.
// Subtotal, Breakdown and Total are derived from Items and are recomputed
// whenever the items or the counterparty state change; they are never edited
// directly.
type Document struct {
	ID                string          `json:"id"`
	OwnerID           string          `json:"owner_id"`
	Kind              DocumentKind    `json:"kind"`
	DocumentNumber    string          `json:"document_number"`
	CounterpartyName  string          `json:"counterparty_name"`
	CounterpartyAddr  string          `json:"counterparty_address"`
	CounterpartyState string          `json:"counterparty_state"`
	CounterpartyGSTIN string          `json:"counterparty_gstin"`
	CounterpartyPAN   string          `json:"counterparty_pan"`
	Date              time.Time       `json:"date"`
	Items             []LineItem      `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Breakdown         GSTBreakdown    `json:"gst_breakdown"`
	Total             decimal.Decimal `json:"total"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
}
