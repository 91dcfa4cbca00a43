package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/telswitch/isdnc/internal/crypto"
	"github.com/telswitch/isdnc/internal/model"
	"github.com/telswitch/isdnc/internal/repository"
)

var (
	// ErrInvalidCredentials is the single failure every login branch
	// collapses to: unknown username, inactive account, and wrong password
	// are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUserExists = errors.New("an account with that username or email already exists")

	ErrUsernameLength = errors.New("username must be between 3 and 100 characters")
	ErrInvalidEmail   = errors.New("a valid email address is required")
	ErrPasswordLength = errors.New("password must be at least 8 characters")
)

// resetConfirmation is returned for every forgot-password request, whether
// or not an account exists for the address.
const resetConfirmation = "if an account exists for that address, a password reset email has been sent"

// UserStore is the credential-store contract the auth flows depend on.
// Satisfied by *repository.UserRepository; tests substitute a fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Mailer dispatches password reset email. Delivery failures must not change
// the caller-visible outcome; the service logs and swallows them.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email string) error
}

// AuthService handles registration, login, and password reset flows.
type AuthService struct {
	store         UserStore
	mailer        Mailer
	sessionSecret string
	sessionExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, mailer Mailer, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:         store,
		mailer:        mailer,
		sessionSecret: secret,
		sessionExpiry: expiry,
	}
}

// Register validates and creates a new user account. A duplicate username
// or email returns ErrUserExists without revealing which field collided.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	// Character counts, not byte counts: multi-byte usernames are legal.
	if n := utf8.RuneCountInString(username); n < 3 || n > 100 {
		return ErrUsernameLength
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	if utf8.RuneCountInString(req.Password) < 8 {
		return ErrPasswordLength
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrUserExists
		}
		return err
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return nil
}

// Login authenticates a user and returns a session token. Every failure
// branch returns ErrInvalidCredentials; the branch taken is recorded in a
// server-side audit line only.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		slog.Info("login rejected", "reason", "empty credentials")
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := s.store.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			slog.Info("login rejected", "reason", "unknown username", "username", req.Username)
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !user.IsActive {
		slog.Info("login rejected", "reason", "inactive account", "username", user.Username)
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		// Malformed stored digest. Logged with detail, surfaced as the
		// same generic failure.
		slog.Error("login rejected", "reason", "unverifiable password hash", "username", user.Username, "error", err)
		return model.AuthResponse{}, ErrInvalidCredentials
	}
	if !match {
		slog.Info("login rejected", "reason", "bad password", "username", user.Username)
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.sessionSecret, s.sessionExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	slog.Info("login succeeded", "user_id", user.ID, "username", user.Username)
	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

// ForgotPassword queues a reset email and returns the same confirmation
// message whether or not the address has an account. Mailer failures are
// logged and swallowed for the same reason.
func (s *AuthService) ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			slog.Error("password reset lookup failed", "error", err)
		}
		return resetConfirmation, nil
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email); err != nil {
		slog.Error("password reset email failed", "user_id", user.ID, "error", err)
	}

	return resetConfirmation, nil
}

// GetUser resolves a token-authenticated user ID to safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// isValidEmail requires a non-empty local part and a "." somewhere in the
// domain. Deliberately stricter than bare @-and-dot containment: an address
// like "a.b@com" is undeliverable and gets rejected up front.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}
