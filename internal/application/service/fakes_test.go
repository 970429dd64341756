package service

import (
	"context"
	"sort"
	"sync"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

// nopLogger satisfies Logger for tests.
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs map[string]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[string]*entity.Document{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) Update(_ context.Context, doc *entity.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *doc
	r.docs[doc.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.docs[id]; ok && doc.OwnerID == ownerID {
		delete(r.docs, id)
	}
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok || doc.OwnerID != ownerID {
		return nil, nil
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeDocumentRepo) ListByOwner(_ context.Context, ownerID string, kind entity.DocumentKind) ([]*entity.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Document
	for _, doc := range r.docs {
		if doc.OwnerID == ownerID && doc.Kind == kind {
			copied := *doc
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeDocumentRepo) CountByOwner(ctx context.Context, ownerID string, kind entity.DocumentKind) (int64, error) {
	docs, _ := r.ListByOwner(ctx, ownerID, kind)
	return int64(len(docs)), nil
}

func (r *fakeDocumentRepo) UpdateStatus(_ context.Context, ownerID, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.docs[id]; ok && doc.OwnerID == ownerID {
		doc.Status = status
	}
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*entity.BusinessProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*entity.BusinessProfile{}}
}

func (r *fakeProfileRepo) GetByOwner(_ context.Context, ownerID string) (*entity.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[ownerID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, profile *entity.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *profile
	r.profiles[profile.OwnerID] = &copied
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.Token] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
