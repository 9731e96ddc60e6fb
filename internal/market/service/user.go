package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kolmarket/kolmarket/internal/market/domain"
	"github.com/kolmarket/kolmarket/internal/market/store"
	"github.com/kolmarket/kolmarket/pkg/cryptox"
	"github.com/kolmarket/kolmarket/pkg/idx"
	"github.com/kolmarket/kolmarket/pkg/jwtx"
	"github.com/kolmarket/kolmarket/pkg/slogx"
)

var (
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is deliberately non-specific: the caller
	// cannot tell a missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct {
	Store  store.Store
	Signer jwtx.Signer

	Issuer     string
	SessionTTL time.Duration
}

// Session is an issued bearer credential plus the user it belongs to.
type Session struct {
	AccessToken string
	ExpiresIn   int64 // seconds
	User        domain.User
}

// Register creates a user account and signs them in.
func (s *UserService) Register(ctx context.Context, email, fullName, password, role string) (Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidInput
	}
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleClient && role != domain.RoleAdmin {
		return Session{}, ErrInvalidInput
	}

	// 2. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return Session{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	// 3. Insert; the unique index on email is the conflict arbiter.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)

	// 4. Sign them straight in.
	return s.issueSession(user)
}

// Authenticate verifies credentials and issues a session token.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("failed login attempt", slog.String("user_id", user.ID))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return Session{}, err
	}

	return s.issueSession(user)
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

func (s *UserService) issueSession(user domain.User) (Session, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Email, user.FullName, user.Role, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	return Session{
		AccessToken: token,
		ExpiresIn:   int64(ttl.Seconds()),
		User:        user,
	}, nil
}
