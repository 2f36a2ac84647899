// Package session owns the authentication token and the cached profile.
// It is the single process-wide credential holder: the API client reads
// the token through it and reports expired credentials back to it.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Rahulkholi70/Pizza-delivery-app/api"
	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

// ErrNotAuthenticated is returned by operations that need a session.
var ErrNotAuthenticated = errors.New("not authenticated")

type Store struct {
	api     *api.Client
	storage TokenStorage
	logger  *zap.Logger

	mu          sync.RWMutex
	token       string
	user        *models.User
	loading     bool
	initialized bool
}

// NewStore wires the store into the client as both the token source and
// the forced-logout target for 401 responses.
func NewStore(client *api.Client, storage TokenStorage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		api:     client,
		storage: storage,
		logger:  logger,
		loading: true,
	}
	client.SetTokenSource(s)
	client.HandleUnauthorized(s.expire)
	return s
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Loading reports whether the startup session check is still running.
// Protected views must not render before it clears.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAuthenticated reports whether a validated session exists.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// CurrentUser returns a copy of the cached profile.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAdmin reports whether the session may use the admin console.
func (s *Store) IsAdmin() bool {
	u, ok := s.CurrentUser()
	return ok && u.IsAdmin()
}

// Initialize resolves a stored token against the backend exactly once
// per process start. Any failure, including unauthorized, discards the
// token and leaves the store unauthenticated.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true

	token, err := s.storage.Load()
	if err != nil {
		s.loading = false
		s.mu.Unlock()
		return err
	}
	if token == "" {
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	s.token = token
	s.mu.Unlock()

	// The token already looks expired: skip the doomed round trip.
	if exp, ok := parseExpiry(token); ok && exp.Before(time.Now()) {
		s.logger.Info("stored token expired, discarding")
		s.clear()
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Info("stored token rejected, discarding", zap.String("reason", api.UserMessage(err, "authentication check failed")))
		s.clear()
		return nil
	}

	s.mu.Lock()
	s.user = &user
	s.loading = false
	s.mu.Unlock()
	s.logger.Info("session restored", zap.String("user", user.Email))
	return nil
}

// Login submits credentials and, on success, stores the returned token
// durably and caches the profile. No automatic retry.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, user, err := s.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.loading = false
	s.mu.Unlock()

	if err := s.storage.Save(token); err != nil {
		s.logger.Warn("failed to persist token", zap.Error(err))
	}
	s.logger.Info("logged in", zap.String("user", user.Email))
	return nil
}

// Logout clears the session synchronously. No network call.
func (s *Store) Logout() {
	s.clear()
	s.logger.Info("logged out")
}

// expire is the forced-logout path fired by the API client on any 401.
func (s *Store) expire() {
	if !s.IsAuthenticated() {
		return
	}
	s.clear()
	s.logger.Warn("session expired, logged out")
}

func (s *Store) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.loading = false
	s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("failed to clear stored token", zap.Error(err))
	}
}

// UpdateProfile submits a partial update; the server's returned copy
// replaces the cache wholesale.
func (s *Store) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (models.User, error) {
	if !s.IsAuthenticated() {
		return models.User{}, ErrNotAuthenticated
	}
	user, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

// ChangePassword rotates the account password.
func (s *Store) ChangePassword(ctx context.Context, current, next string) (string, error) {
	if !s.IsAuthenticated() {
		return "", ErrNotAuthenticated
	}
	return s.api.ChangePassword(ctx, current, next)
}

// Register, ForgotPassword, ResetPassword and VerifyEmail need no local
// state; they pass through so callers only ever talk to the store.

func (s *Store) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	return s.api.Register(ctx, req)
}

func (s *Store) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.api.ForgotPassword(ctx, email)
}

func (s *Store) ResetPassword(ctx context.Context, token, password string) (string, error) {
	return s.api.ResetPassword(ctx, token, password)
}

func (s *Store) VerifyEmail(ctx context.Context, token string) (string, error) {
	return s.api.VerifyEmail(ctx, token)
}

// TokenExpiry reports when the current token lapses, when the claim is
// readable. The token stays opaque otherwise; nothing is verified here,
// the backend owns the signing secret.
func (s *Store) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	return parseExpiry(token)
}

func parseExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
