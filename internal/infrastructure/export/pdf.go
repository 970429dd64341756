// Package export renders finished documents to PDF, PNG and spreadsheet
// files. Exporters consume values the domain has already computed; they
// never recalculate totals.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/internal/domain/gst"
	"github.com/parthdesai/billflow/pkg/utils"
)

// PDFExporter writes A4 invoice/bill PDFs into an output directory.
type PDFExporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter(outputDir string, logger *zap.Logger) (*PDFExporter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &PDFExporter{outputDir: outputDir, logger: logger}, nil
}

// ExportPDF renders the document and returns the written file path.
func (e *PDFExporter) ExportPDF(ctx context.Context, profile *entity.BusinessProfile, doc *entity.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	title := "TAX INVOICE"
	partyLabel := "Bill To"
	if doc.Kind == entity.KindPurchaseBill {
		title = "PURCHASE BILL"
		partyLabel = "Vendor"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Seller header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, profile.LegalName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if profile.GSTIN != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+profile.GSTIN, "", 1, "C", false, 0, "")
	}
	if profile.RegistrationState != "" {
		pdf.CellFormat(0, 5, "State: "+profile.RegistrationState, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 7, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Document identity and counterparty
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 6, fmt.Sprintf("No: %s", doc.DocumentNumber))
	pdf.CellFormat(95, 6, "Date: "+utils.FormatDate(doc.Date), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, partyLabel, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, doc.CounterpartyName, "", 1, "L", false, 0, "")
	if doc.CounterpartyAddr != "" {
		pdf.CellFormat(0, 5, doc.CounterpartyAddr, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, "State: "+doc.CounterpartyState, "", 1, "L", false, 0, "")
	if doc.CounterpartyGSTIN != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+doc.CounterpartyGSTIN, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(72, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(24, 7, "HSN/SAC", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(38, 7, "Rate (Rs.)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(38, 7, "Amount (Rs.)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range doc.Items {
		pdf.CellFormat(72, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 7, item.TaxCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 7, utils.FormatINR(item.UnitRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(38, 7, utils.FormatINR(item.LineTotal), "1", 1, "R", false, 0, "")
	}

	// Totals
	totalRow := func(label, value string, bold bool) {
		if bold {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(114, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(38, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 7, value, "1", 1, "R", false, 0, "")
	}

	totalRow("Subtotal", utils.FormatINR(doc.Subtotal), false)
	if doc.Breakdown.IsInterState {
		totalRow("IGST @ 18%", utils.FormatINR(doc.Breakdown.IGST), false)
	} else {
		totalRow("CGST @ 9%", utils.FormatINR(doc.Breakdown.CGST), false)
		totalRow("SGST @ 9%", utils.FormatINR(doc.Breakdown.SGST), false)
	}
	totalRow("Total", utils.FormatINR(doc.Total), true)

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 5, "Amount in words: "+gst.AmountInWords(doc.Total.Round(0).IntPart()), "", "L", false)

	if profile.BankDetails != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, "Bank details: "+profile.BankDetails, "", "L", false)
	}

	outPath := filepath.Join(e.outputDir, fmt.Sprintf("%s.pdf", doc.DocumentNumber))
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		e.logger.Error("Failed to write PDF", zap.Error(err), zap.String("path", outPath))
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	e.logger.Info("PDF exported",
		zap.String("document_number", doc.DocumentNumber),
		zap.String("path", outPath))
	return outPath, nil
}
