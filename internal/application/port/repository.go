// Package port defines the interfaces the application layer depends on.
// Infrastructure packages provide the implementations.
package port

import (
	"context"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

// DocumentRepository persists invoices and purchase bills. All operations
// are scoped to one owner; lookups outside the owner's collection report
// not-found by returning (nil, nil).
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	Update(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, ownerID, id string) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Document, error)

	// ListByOwner returns the owner's documents of one kind ordered by
	// creation time descending.
	ListByOwner(ctx context.Context, ownerID string, kind entity.DocumentKind) ([]*entity.Document, error)

	// CountByOwner feeds the numbering sequence. The count is read before
	// the new document is written; there is no atomic increment.
	CountByOwner(ctx context.Context, ownerID string, kind entity.DocumentKind) (int64, error)

	UpdateStatus(ctx context.Context, ownerID, id, status string) error
}

// ProfileRepository persists one business profile per owner.
type ProfileRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*entity.BusinessProfile, error)
	Save(ctx context.Context, profile *entity.BusinessProfile) error
}

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// SessionRepository persists bearer sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByToken(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}
