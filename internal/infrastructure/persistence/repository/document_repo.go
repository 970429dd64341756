// Package repository contains the SQLite implementations of the
// application's persistence ports.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/pkg/database"
)

// DocumentRepository handles document and line item database operations
type DocumentRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *database.DB, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{db: db, logger: logger}
}

// Create inserts a document and its line items in one transaction.
func (r *DocumentRepository) Create(ctx context.Context, doc *entity.Document) error {
	err := r.db.WithTransaction(func(tx *sql.Tx) error {
		query := `
			INSERT INTO documents (
				id, owner_id, kind, document_number, counterparty_name,
				counterparty_address, counterparty_state, counterparty_gstin,
				counterparty_pan, document_date, subtotal, is_inter_state,
				igst, cgst, sgst, tax_total, total, status, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			doc.ID,
			doc.OwnerID,
			string(doc.Kind),
			doc.DocumentNumber,
			doc.CounterpartyName,
			doc.CounterpartyAddr,
			doc.CounterpartyState,
			doc.CounterpartyGSTIN,
			doc.CounterpartyPAN,
			doc.Date,
			doc.Subtotal.String(),
			doc.Breakdown.IsInterState,
			doc.Breakdown.IGST.String(),
			doc.Breakdown.CGST.String(),
			doc.Breakdown.SGST.String(),
			doc.Breakdown.Total.String(),
			doc.Total.String(),
			doc.Status,
			doc.CreatedAt,
		)
		if err != nil {
			return err
		}
		return r.insertItems(ctx, tx, doc)
	})
	if err != nil {
		r.logger.Error("Failed to create document", zap.Error(err), zap.String("document_id", doc.ID))
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// Update rewrites the document row and replaces its line items.
func (r *DocumentRepository) Update(ctx context.Context, doc *entity.Document) error {
	err := r.db.WithTransaction(func(tx *sql.Tx) error {
		query := `
			UPDATE documents SET
				counterparty_name = ?, counterparty_address = ?,
				counterparty_state = ?, counterparty_gstin = ?,
				counterparty_pan = ?, document_date = ?, subtotal = ?,
				is_inter_state = ?, igst = ?, cgst = ?, sgst = ?,
				tax_total = ?, total = ?, status = ?
			WHERE id = ? AND owner_id = ?
		`
		_, err := tx.ExecContext(ctx, query,
			doc.CounterpartyName,
			doc.CounterpartyAddr,
			doc.CounterpartyState,
			doc.CounterpartyGSTIN,
			doc.CounterpartyPAN,
			doc.Date,
			doc.Subtotal.String(),
			doc.Breakdown.IsInterState,
			doc.Breakdown.IGST.String(),
			doc.Breakdown.CGST.String(),
			doc.Breakdown.SGST.String(),
			doc.Breakdown.Total.String(),
			doc.Total.String(),
			doc.Status,
			doc.ID,
			doc.OwnerID,
		)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM line_items WHERE document_id = ?", doc.ID); err != nil {
			return err
		}
		return r.insertItems(ctx, tx, doc)
	})
	if err != nil {
		r.logger.Error("Failed to update document", zap.Error(err), zap.String("document_id", doc.ID))
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

// Delete removes the document; line items cascade.
func (r *DocumentRepository) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		r.logger.Error("Failed to delete document", zap.Error(err), zap.String("document_id", id))
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// GetByID retrieves a document with its line items. Returns (nil, nil) when
// the owner has no such document.
func (r *DocumentRepository) GetByID(ctx context.Context, ownerID, id string) (*entity.Document, error) {
	row := r.db.QueryRowContext(ctx, selectDocuments+" WHERE id = ? AND owner_id = ?", id, ownerID)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get document", zap.Error(err), zap.String("document_id", id))
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if err := r.loadItems(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListByOwner returns the owner's documents of one kind, newest first, with
// line items attached.
func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID string, kind entity.DocumentKind) ([]*entity.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		selectDocuments+" WHERE owner_id = ? AND kind = ? ORDER BY created_at DESC",
		ownerID, string(kind))
	if err != nil {
		r.logger.Error("Failed to list documents", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if err := r.loadItems(ctx, doc); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// CountByOwner returns the number of documents the owner has of one kind.
func (r *DocumentRepository) CountByOwner(ctx context.Context, ownerID string, kind entity.DocumentKind) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE owner_id = ? AND kind = ?",
		ownerID, string(kind)).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count documents", zap.Error(err), zap.String("owner_id", ownerID))
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// UpdateStatus sets the payment status on an existing document.
func (r *DocumentRepository) UpdateStatus(ctx context.Context, ownerID, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE documents SET status = ? WHERE id = ? AND owner_id = ?",
		status, id, ownerID)
	if err != nil {
		r.logger.Error("Failed to update document status", zap.Error(err), zap.String("document_id", id))
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

const selectDocuments = `
	SELECT id, owner_id, kind, document_number, counterparty_name,
		counterparty_address, counterparty_state, counterparty_gstin,
		counterparty_pan, document_date, subtotal, is_inter_state,
		igst, cgst, sgst, tax_total, total, status, created_at
	FROM documents
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*entity.Document, error) {
	var doc entity.Document
	var kind, subtotal, igst, cgst, sgst, taxTotal, total string

	err := row.Scan(
		&doc.ID,
		&doc.OwnerID,
		&kind,
		&doc.DocumentNumber,
		&doc.CounterpartyName,
		&doc.CounterpartyAddr,
		&doc.CounterpartyState,
		&doc.CounterpartyGSTIN,
		&doc.CounterpartyPAN,
		&doc.Date,
		&subtotal,
		&doc.Breakdown.IsInterState,
		&igst,
		&cgst,
		&sgst,
		&taxTotal,
		&total,
		&doc.Status,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.Kind = entity.DocumentKind(kind)
	if doc.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return nil, fmt.Errorf("bad subtotal %q: %w", subtotal, err)
	}
	if doc.Breakdown.IGST, err = decimal.NewFromString(igst); err != nil {
		return nil, fmt.Errorf("bad igst %q: %w", igst, err)
	}
	if doc.Breakdown.CGST, err = decimal.NewFromString(cgst); err != nil {
		return nil, fmt.Errorf("bad cgst %q: %w", cgst, err)
	}
	if doc.Breakdown.SGST, err = decimal.NewFromString(sgst); err != nil {
		return nil, fmt.Errorf("bad sgst %q: %w", sgst, err)
	}
	if doc.Breakdown.Total, err = decimal.NewFromString(taxTotal); err != nil {
		return nil, fmt.Errorf("bad tax total %q: %w", taxTotal, err)
	}
	if doc.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("bad total %q: %w", total, err)
	}
	return &doc, nil
}

func (r *DocumentRepository) insertItems(ctx context.Context, tx *sql.Tx, doc *entity.Document) error {
	query := `
		INSERT INTO line_items (
			id, document_id, position, description, tax_code, quantity, unit_rate, line_total
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, item := range doc.Items {
		_, err := tx.ExecContext(ctx, query,
			item.ID,
			doc.ID,
			i,
			item.Description,
			item.TaxCode,
			item.Quantity,
			item.UnitRate.String(),
			item.LineTotal.String(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *DocumentRepository) loadItems(ctx context.Context, doc *entity.Document) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, tax_code, quantity, unit_rate, line_total
		FROM line_items
		WHERE document_id = ?
		ORDER BY position
	`, doc.ID)
	if err != nil {
		return fmt.Errorf("failed to load line items: %w", err)
	}
	defer rows.Close()

	doc.Items = nil
	for rows.Next() {
		var item entity.LineItem
		var rate, lineTotal string
		if err := rows.Scan(&item.ID, &item.Description, &item.TaxCode, &item.Quantity, &rate, &lineTotal); err != nil {
			return fmt.Errorf("failed to scan line item: %w", err)
		}
		if item.UnitRate, err = decimal.NewFromString(rate); err != nil {
			return fmt.Errorf("bad unit rate %q: %w", rate, err)
		}
		if item.LineTotal, err = decimal.NewFromString(lineTotal); err != nil {
			return fmt.Errorf("bad line total %q: %w", lineTotal, err)
		}
		doc.Items = append(doc.Items, item)
	}
	return rows.Err()
}
