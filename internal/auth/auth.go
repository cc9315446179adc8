// Package auth implements user accounts and the bearer token sessions the
// task API authenticates with.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// DefaultSessionTTL is how long a login session stays valid unless
// configured otherwise.
const DefaultSessionTTL = 30 * 24 * time.Hour

// ServiceConfig is the configuration of the auth service.
type ServiceConfig struct {
	Repository storage.UserRepository
	SessionTTL time.Duration
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.SessionTTL == 0 {
		c.SessionTTL = DefaultSessionTTL
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service implements authentication: user registration, password
// verification and session lifecycle.
type Service struct {
	repo       storage.UserRepository
	sessionTTL time.Duration
	logger     log.Logger
}

// NewService returns a new auth service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:       cfg.Repository,
		sessionTTL: cfg.SessionTTL,
		logger:     cfg.Logger,
	}, nil
}

// CreateUser registers a user with a bcrypt hashed password.
func (s *Service) CreateUser(ctx context.Context, user model.User, password string) (*model.User, error) {
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", MinPasswordLength, model.ErrNotValid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user.PasswordHash = hash
	user.Normalize()
	if err := user.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	s.logger.WithValues(log.Kv{"user": created.ID, "org": created.OrgID}).Infof("User created")

	return created, nil
}

// Login verifies the credentials and opens a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*model.Session, *model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, fmt.Errorf("unknown email or password: %w", model.ErrUnauthenticated)
		}
		return nil, nil, fmt.Errorf("could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("unknown email or password: %w", model.ErrUnauthenticated)
	}

	now := time.Now().UTC()
	session := model.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("could not store session: %w", err)
	}

	s.logger.WithValues(log.Kv{"user": user.ID}).Debugf("Session opened")

	return &session, user, nil
}

// Authenticate resolves a bearer token into its user. Expired sessions are
// deleted on sight.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, fmt.Errorf("missing bearer token: %w", model.ErrUnauthenticated)
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("unknown session: %w", model.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("could not get session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		if err := s.repo.DeleteSession(ctx, session.Token); err != nil {
			s.logger.Warningf("Could not delete expired session: %s", err)
		}
		return nil, fmt.Errorf("session expired: %w", model.ErrUnauthenticated)
	}

	user, err := s.repo.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("session user no longer exists: %w", model.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return user, nil
}

// Logout deletes the session behind the token. Unknown tokens are fine.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.repo.DeleteSession(ctx, token)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("could not delete session: %w", err)
	}

	return nil
}
