package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/parthdesai/billflow/internal/application/port"
	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/pkg/utils"
)

var (
	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when signing up with a registered email
	ErrEmailTaken = errors.New("email already registered")

	// ErrSessionExpired is returned for missing or expired session tokens
	ErrSessionExpired = errors.New("session expired")
)

// AuthService manages accounts and bearer sessions. Passwords are stored as
// bcrypt hashes and never returned.
type AuthService interface {
	SignUp(ctx context.Context, email, password, gstin string) (*entity.User, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}

type authServiceImpl struct {
	userRepo    port.UserRepository
	sessionRepo port.SessionRepository
	profiles    ProfileService
	sessionTTL  time.Duration
	bcryptCost  int
	logger      Logger
	now         func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo port.UserRepository,
	sessionRepo port.SessionRepository,
	profiles ProfileService,
	sessionTTL time.Duration,
	bcryptCost int,
	logger Logger,
) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		profiles:    profiles,
		sessionTTL:  sessionTTL,
		bcryptCost:  bcryptCost,
		logger:      logger,
		now:         time.Now,
	}
}

// SignUp registers an account and seeds its default business profile. The
// optional GSTIN is copied onto the profile.
func (s *authServiceImpl) SignUp(ctx context.Context, email, password, gstin string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := utils.ValidateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if gstin != "" {
		if err := utils.ValidateGSTIN(gstin); err != nil {
			return nil, err
		}
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", "error", err, "email", email)
		return nil, fmt.Errorf("create user: %w", err)
	}

	if _, err := s.profiles.CreateDefault(ctx, user.ID, gstin); err != nil {
		return nil, err
	}

	s.logger.Info("Account created", "user_id", user.ID)
	return user, nil
}

// SignIn verifies the password and issues an opaque session token.
func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
		CreatedAt: s.now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Failed to create session", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("Signed in", "user_id", user.ID)
	return session, nil
}

// SignOut invalidates the token. Unknown tokens are not an error.
func (s *authServiceImpl) SignOut(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CurrentUser resolves a bearer token to its account.
func (s *authServiceImpl) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil || s.now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionExpired
	}
	return user, nil
}
