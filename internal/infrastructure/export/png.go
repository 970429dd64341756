package export

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

// PNGExporter rasterizes a document to a PNG by rendering its PDF first and
// converting the first page. Embedding the PDF exporter makes this the full
// document exporter used by the HTTP layer.
type PNGExporter struct {
	*PDFExporter
	logger *zap.Logger
}

// NewPNGExporter creates a new PNG exporter on top of a PDF exporter
func NewPNGExporter(pdf *PDFExporter, logger *zap.Logger) *PNGExporter {
	return &PNGExporter{PDFExporter: pdf, logger: logger}
}

// ExportPNG renders the document's PDF, rasterizes page one and returns the
// written PNG path.
func (e *PNGExporter) ExportPNG(ctx context.Context, profile *entity.BusinessProfile, doc *entity.Document) (string, error) {
	pdfPath, err := e.ExportPDF(ctx, profile, doc)
	if err != nil {
		return "", err
	}

	fz, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF for rasterizing: %w", err)
	}
	defer fz.Close()

	if fz.NumPage() == 0 {
		return "", fmt.Errorf("rendered PDF has no pages: %s", pdfPath)
	}

	img, err := fz.Image(0)
	if err != nil {
		return "", fmt.Errorf("failed to rasterize page: %w", err)
	}

	outPath := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".png"
	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create PNG file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		e.logger.Error("Failed to encode PNG", zap.Error(err), zap.String("path", outPath))
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	e.logger.Info("PNG exported",
		zap.String("document_number", doc.DocumentNumber),
		zap.String("path", outPath))
	return outPath, nil
}
