package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/pkg/utils"
)

// ExcelExporter writes a tabular workbook of documents.
type ExcelExporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter(outputDir string, logger *zap.Logger) (*ExcelExporter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &ExcelExporter{outputDir: outputDir, logger: logger}, nil
}

var sheetHeaders = []string{
	"Number", "Date", "Counterparty", "State", "GSTIN",
	"Subtotal", "IGST", "CGST", "SGST", "Total", "Status",
}

// ExportSheet writes one row per document under the chosen sheet name and
// returns the written file path.
func (e *ExcelExporter) ExportSheet(ctx context.Context, sheetName string, docs []*entity.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range sheetHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			e.logger.Warn("Failed to set header cell", zap.String("cell", cell), zap.Error(err))
		}
	}

	for i, doc := range docs {
		row := []interface{}{
			doc.DocumentNumber,
			utils.FormatDate(doc.Date),
			doc.CounterpartyName,
			doc.CounterpartyState,
			doc.CounterpartyGSTIN,
			utils.FormatINR(doc.Subtotal),
			utils.FormatINR(doc.Breakdown.IGST),
			utils.FormatINR(doc.Breakdown.CGST),
			utils.FormatINR(doc.Breakdown.SGST),
			utils.FormatINR(doc.Total),
			doc.Status,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	outPath := filepath.Join(e.outputDir, fmt.Sprintf("%s_%s.xlsx", sheetName, time.Now().Format("20060102_150405")))
	if err := f.SaveAs(outPath); err != nil {
		e.logger.Error("Failed to save workbook", zap.Error(err), zap.String("path", outPath))
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("Spreadsheet exported",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(docs)),
		zap.String("path", outPath))
	return outPath, nil
}
