package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/warungkita/food-ordering/internal/api/metrics"
	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService implements registration, login, and the session lifecycle.
//
// Sessions move Created → Valid → (Expired | Destroyed). Expiry is enforced
// lazily at resolution time; both terminal states resolve as
// domain.ErrUnauthenticated and are indistinguishable to callers.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration
	logger     zerolog.Logger

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates a user with a bcrypt-hashed password. Email uniqueness is
// enforced by the repository's atomic write, not by a prior existence check.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           newID("user"),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues a session. An unknown email and a
// wrong password are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, *domain.User, error) {
	if email == "" || password == "" {
		return "", time.Time{}, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginFailuresTotal.Inc()
			return "", time.Time{}, nil, domain.ErrInvalidCredentials
		}
		return "", time.Time{}, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginFailuresTotal.Inc()
		return "", time.Time{}, nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.createSession(ctx, user.ID)
	if err != nil {
		return "", time.Time{}, nil, err
	}

	return token, expiresAt, user, nil
}

// createSession generates an opaque token, persists the mapping, and returns
// both the token and its expiry.
func (s *AuthService) createSession(ctx context.Context, userID string) (string, time.Time, error) {
	token := newToken()
	expiresAt := s.now().UTC().Add(s.sessionTTL)

	session := &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	metrics.SessionsIssuedTotal.Inc()
	s.logger.Info().Str("user_id", userID).Time("expires_at", expiresAt).Msg("session issued")
	return token, expiresAt, nil
}

// ResolveSession turns a presented token into the owning user. Absent tokens,
// expired sessions, and sessions whose user record no longer exists all
// resolve as domain.ErrUnauthenticated.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		metrics.SessionResolutionsTotal.WithLabelValues("missing").Inc()
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.SessionResolutionsTotal.WithLabelValues("missing").Inc()
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if session.Expired(s.now()) {
		metrics.SessionResolutionsTotal.WithLabelValues("expired").Inc()
		// Best-effort reclamation; the backend's own TTL covers the rest.
		_ = s.sessions.Delete(ctx, token)
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SessionResolutionsTotal.WithLabelValues("orphaned").Inc()
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	metrics.SessionResolutionsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

// DestroySession deletes the token's mapping. An absent token is a no-op.
func (s *AuthService) DestroySession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// newToken returns an opaque session token: 32 bytes of crypto/rand,
// base64url without padding.
func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure means the host is unusable
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
