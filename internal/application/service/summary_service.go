package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/parthdesai/billflow/internal/application/port"
	"github.com/parthdesai/billflow/internal/domain/entity"
)

// Summary holds the dashboard numbers for one owner, re-derived from the
// persisted documents on every call.
type Summary struct {
	InvoiceCount      int64           `json:"invoice_count"`
	PurchaseBillCount int64           `json:"purchase_bill_count"`
	PaidCount         int64           `json:"paid_count"`
	UnpaidCount       int64           `json:"unpaid_count"`
	OverdueCount      int64           `json:"overdue_count"`
	Receivable        decimal.Decimal `json:"receivable"` // unpaid + overdue invoice totals
	Received          decimal.Decimal `json:"received"`   // paid invoice totals
	Payable           decimal.Decimal `json:"payable"`    // unpaid + overdue bill totals
	MonthlyRevenue    []MonthTotal    `json:"monthly_revenue"`
}

// MonthTotal is one month's invoiced total, keyed as "2006-01".
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// SummaryService computes dashboard analytics.
type SummaryService interface {
	Summarize(ctx context.Context, ownerID string) (*Summary, error)
}

type summaryServiceImpl struct {
	docRepo port.DocumentRepository
	logger  Logger
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(docRepo port.DocumentRepository, logger Logger) SummaryService {
	return &summaryServiceImpl{docRepo: docRepo, logger: logger}
}

func (s *summaryServiceImpl) Summarize(ctx context.Context, ownerID string) (*Summary, error) {
	invoices, err := s.docRepo.ListByOwner(ctx, ownerID, entity.KindInvoice)
	if err != nil {
		s.logger.Error("Failed to list invoices", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	bills, err := s.docRepo.ListByOwner(ctx, ownerID, entity.KindPurchaseBill)
	if err != nil {
		s.logger.Error("Failed to list purchase bills", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("list purchase bills: %w", err)
	}

	summary := &Summary{
		InvoiceCount:      int64(len(invoices)),
		PurchaseBillCount: int64(len(bills)),
		Receivable:        decimal.Zero,
		Received:          decimal.Zero,
		Payable:           decimal.Zero,
	}

	months := map[string]decimal.Decimal{}
	for _, doc := range invoices {
		switch doc.Status {
		case entity.StatusPaid:
			summary.PaidCount++
			summary.Received = summary.Received.Add(doc.Total)
		case entity.StatusOverdue:
			summary.OverdueCount++
			summary.Receivable = summary.Receivable.Add(doc.Total)
		default:
			summary.UnpaidCount++
			summary.Receivable = summary.Receivable.Add(doc.Total)
		}

		key := doc.Date.Format("2006-01")
		months[key] = months[key].Add(doc.Total)
	}

	for _, doc := range bills {
		if doc.Status != entity.StatusPaid {
			summary.Payable = summary.Payable.Add(doc.Total)
		}
	}

	// invoices arrive newest first; keep the month buckets in that order
	seen := map[string]bool{}
	for _, doc := range invoices {
		key := doc.Date.Format("2006-01")
		if seen[key] {
			continue
		}
		seen[key] = true
		summary.MonthlyRevenue = append(summary.MonthlyRevenue, MonthTotal{Month: key, Total: months[key]})
	}

	return summary, nil
}
