package port

import (
	"context"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

// DocumentExporter renders a finished document to a file on disk and
// returns the written path. Exporters consume already-computed values; they
// never recompute totals.
type DocumentExporter interface {
	ExportPDF(ctx context.Context, profile *entity.BusinessProfile, doc *entity.Document) (string, error)
	ExportPNG(ctx context.Context, profile *entity.BusinessProfile, doc *entity.Document) (string, error)
}

// SpreadsheetExporter writes a tabular row-set of documents to a workbook
// with the chosen sheet name.
type SpreadsheetExporter interface {
	ExportSheet(ctx context.Context, sheetName string, docs []*entity.Document) (string, error)
}
