package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parthdesai/billflow/internal/application/port"
	"github.com/parthdesai/billflow/internal/domain/document"
	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/internal/domain/gst"
	"github.com/parthdesai/billflow/internal/domain/workflow"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

var (
	// ErrNotFound is returned when a record does not exist in the owner's
	// collection
	ErrNotFound = errors.New("record not found")
)

// DocumentService manages invoices and purchase bills for one owner at a
// time. Every operation takes the owner identity explicitly; nothing is read
// from ambient state.
type DocumentService interface {
	Create(ctx context.Context, ownerID string, in document.Input) (*entity.Document, error)
	Update(ctx context.Context, ownerID, id string, in document.Input) (*entity.Document, error)
	Delete(ctx context.Context, ownerID, id string) error
	Get(ctx context.Context, ownerID, id string) (*entity.Document, error)
	List(ctx context.Context, ownerID string, kind entity.DocumentKind) ([]*entity.Document, error)
	TogglePaid(ctx context.Context, ownerID, id string) (*entity.Document, error)
	MarkOverdue(ctx context.Context, ownerID, id string) (*entity.Document, error)
}

type documentServiceImpl struct {
	docRepo     port.DocumentRepository
	profileRepo port.ProfileRepository
	logger      Logger
	now         func() time.Time
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(docRepo port.DocumentRepository, profileRepo port.ProfileRepository, logger Logger) DocumentService {
	return &documentServiceImpl{
		docRepo:     docRepo,
		profileRepo: profileRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates the input, assigns the next document number for the
// owner's prefix and persists the new record. The count is read before the
// write; concurrent creates from the same account can be offered the same
// number.
func (s *documentServiceImpl) Create(ctx context.Context, ownerID string, in document.Input) (*entity.Document, error) {
	profile, err := s.profile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	count, err := s.docRepo.CountByOwner(ctx, ownerID, in.Kind)
	if err != nil {
		s.logger.Error("Failed to count documents", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("count documents: %w", err)
	}

	number := gst.NextDocumentNumber(profile.InvoicePrefix, count)
	doc, verrs := document.Build(*profile, in, number, s.now())
	if verrs != nil {
		return nil, verrs
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		s.logger.Error("Failed to create document", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.logger.Info("Document created",
		"owner_id", ownerID,
		"kind", string(doc.Kind),
		"document_number", doc.DocumentNumber)
	return doc, nil
}

// Update re-validates and rebuilds the content fields, preserving the
// document number, creation time and status.
func (s *documentServiceImpl) Update(ctx context.Context, ownerID, id string, in document.Input) (*entity.Document, error) {
	profile, err := s.profile(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	doc, verrs := document.Edit(*existing, *profile, in)
	if verrs != nil {
		return nil, verrs
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		s.logger.Error("Failed to update document", "error", err, "document_id", id)
		return nil, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

// Delete permanently removes the document from the owner's collection.
func (s *documentServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.docRepo.Delete(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to delete document", "error", err, "document_id", id)
		return fmt.Errorf("delete document: %w", err)
	}
	s.logger.Info("Document deleted", "owner_id", ownerID, "document_id", id)
	return nil
}

// Get retrieves one document from the owner's collection.
func (s *documentServiceImpl) Get(ctx context.Context, ownerID, id string) (*entity.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		s.logger.Error("Failed to get document", "error", err, "document_id", id)
		return nil, fmt.Errorf("get document: %w", err)
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// List returns the owner's documents of one kind, newest first. Totals come
// from the persisted authoritative items, not from any client-held state.
func (s *documentServiceImpl) List(ctx context.Context, ownerID string, kind entity.DocumentKind) ([]*entity.Document, error) {
	docs, err := s.docRepo.ListByOwner(ctx, ownerID, kind)
	if err != nil {
		s.logger.Error("Failed to list documents", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// TogglePaid flips the document between unpaid and paid.
func (s *documentServiceImpl) TogglePaid(ctx context.Context, ownerID, id string) (*entity.Document, error) {
	trigger := func(current workflow.State) workflow.Trigger {
		if current == workflow.StatePaid {
			return workflow.TriggerMarkUnpaid
		}
		return workflow.TriggerMarkPaid
	}
	return s.fire(ctx, ownerID, id, trigger)
}

// MarkOverdue moves an unpaid document to overdue. This is the entry point
// for the external time-based process; paid documents are rejected.
func (s *documentServiceImpl) MarkOverdue(ctx context.Context, ownerID, id string) (*entity.Document, error) {
	return s.fire(ctx, ownerID, id, func(workflow.State) workflow.Trigger {
		return workflow.TriggerMarkOverdue
	})
}

func (s *documentServiceImpl) fire(ctx context.Context, ownerID, id string, pick func(workflow.State) workflow.Trigger) (*entity.Document, error) {
	doc, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	machine, err := workflow.NewMachine(workflow.State(doc.Status))
	if err != nil {
		return nil, err
	}
	if err := machine.Fire(pick(machine.State())); err != nil {
		return nil, err
	}

	doc.Status = machine.State().String()
	if err := s.docRepo.UpdateStatus(ctx, ownerID, id, doc.Status); err != nil {
		s.logger.Error("Failed to update status", "error", err, "document_id", id)
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("Document status changed",
		"document_id", id,
		"status", doc.Status)
	return doc, nil
}

func (s *documentServiceImpl) profile(ctx context.Context, ownerID string) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to get profile", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}
