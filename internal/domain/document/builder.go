// Package document assembles validated invoice and purchase-bill records
// from raw input, keeping the derived totals consistent with the items.
package document

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/internal/domain/gst"
)

// ItemInput is one raw line item as submitted.
type ItemInput struct {
	Description string          `json:"description"`
	TaxCode     string          `json:"tax_code"`
	Quantity    int64           `json:"quantity"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
}

// Input carries the validated-but-raw fields for a document.
type Input struct {
	Kind              entity.DocumentKind `json:"kind"`
	CounterpartyName  string              `json:"counterparty_name"`
	CounterpartyAddr  string              `json:"counterparty_address"`
	CounterpartyState string              `json:"counterparty_state"`
	CounterpartyGSTIN string              `json:"counterparty_gstin"`
	CounterpartyPAN   string              `json:"counterparty_pan"`
	Date              time.Time           `json:"date"`
	Items             []ItemInput         `json:"items"`
}

// Validate checks the input and reports every failing field. A nil result
// means the input can be built.
func Validate(in Input) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(in.CounterpartyName) == "" {
		errs = append(errs, FieldError{Field: "counterparty_name", Message: "name is required"})
	}
	// Purchase bills do not require a vendor address.
	if in.Kind == entity.KindInvoice && strings.TrimSpace(in.CounterpartyAddr) == "" {
		errs = append(errs, FieldError{Field: "counterparty_address", Message: "address is required"})
	}
	if strings.TrimSpace(in.CounterpartyState) == "" {
		errs = append(errs, FieldError{Field: "counterparty_state", Message: "state is required"})
	}

	if len(in.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.Description) == "" {
			errs = append(errs, FieldError{Field: itemField(i, "description"), Message: "description is required"})
		}
		if item.Quantity <= 0 {
			errs = append(errs, FieldError{Field: itemField(i, "quantity"), Message: "quantity must be positive"})
		}
		if !item.UnitRate.IsPositive() {
			errs = append(errs, FieldError{Field: itemField(i, "unit_rate"), Message: "rate must be positive"})
		}
	}

	return errs
}

// Build assembles a new document: items are totalled, the GST split is
// computed from the owner's registration state and the counterparty state,
// and the status starts at unpaid. documentNumber is assigned by the caller,
// which owns the numbering sequence.
func Build(profile entity.BusinessProfile, in Input, documentNumber string, now time.Time) (*entity.Document, ValidationErrors) {
	if errs := Validate(in); errs != nil {
		return nil, errs
	}

	doc := &entity.Document{
		ID:             uuid.NewString(),
		OwnerID:        profile.OwnerID,
		Kind:           in.Kind,
		DocumentNumber: documentNumber,
		Status:         entity.StatusUnpaid,
		CreatedAt:      now,
	}
	applyContent(doc, profile, in)
	return doc, nil
}

// Edit rebuilds an existing document's content fields and derived totals.
// DocumentNumber, CreatedAt and Status are preserved unchanged.
func Edit(existing entity.Document, profile entity.BusinessProfile, in Input) (*entity.Document, ValidationErrors) {
	// The stored kind is authoritative; input cannot reclass the document or
	// borrow the other kind's looser validation rules.
	in.Kind = existing.Kind
	if errs := Validate(in); errs != nil {
		return nil, errs
	}

	doc := &entity.Document{
		ID:             existing.ID,
		OwnerID:        existing.OwnerID,
		Kind:           existing.Kind,
		DocumentNumber: existing.DocumentNumber,
		Status:         existing.Status,
		CreatedAt:      existing.CreatedAt,
	}
	applyContent(doc, profile, in)
	return doc, nil
}

// applyContent copies the content fields and recomputes every derived value
// from the items, so totals can never drift from the item list.
func applyContent(doc *entity.Document, profile entity.BusinessProfile, in Input) {
	doc.CounterpartyName = strings.TrimSpace(in.CounterpartyName)
	doc.CounterpartyAddr = strings.TrimSpace(in.CounterpartyAddr)
	doc.CounterpartyState = strings.TrimSpace(in.CounterpartyState)
	doc.CounterpartyGSTIN = strings.TrimSpace(in.CounterpartyGSTIN)
	doc.CounterpartyPAN = strings.TrimSpace(in.CounterpartyPAN)
	doc.Date = in.Date

	doc.Items = make([]entity.LineItem, 0, len(in.Items))
	for _, item := range in.Items {
		li := entity.LineItem{
			ID:          uuid.NewString(),
			Description: strings.TrimSpace(item.Description),
			TaxCode:     strings.TrimSpace(item.TaxCode),
			Quantity:    item.Quantity,
			UnitRate:    item.UnitRate,
		}
		li.Recalculate()
		doc.Items = append(doc.Items, li)
	}

	doc.Subtotal = gst.ComputeSubtotal(doc.Items)
	doc.Breakdown = gst.ComputeBreakdown(doc.Subtotal, profile.RegistrationState, doc.CounterpartyState)
	doc.Total = doc.Subtotal.Add(doc.Breakdown.Total)
}

// NewLineItem returns the blank item added by an "add item" action:
// quantity one, zero rate.
func NewLineItem() entity.LineItem {
	return entity.LineItem{
		ID:        uuid.NewString(),
		Quantity:  1,
		UnitRate:  decimal.Zero,
		LineTotal: decimal.Zero,
	}
}

// RemoveItem deletes the identified item from the slice. The last remaining
// item is not removable: a document under edit always keeps at least one.
func RemoveItem(items []entity.LineItem, id string) ([]entity.LineItem, error) {
	if len(items) <= 1 {
		return items, ErrLastItem
	}
	for i, item := range items {
		if item.ID == id {
			return append(items[:i:i], items[i+1:]...), nil
		}
	}
	return items, ErrItemNotFound
}
