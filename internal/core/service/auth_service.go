package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// AuthService implements registration, login and identity resolution on top
// of the credential store adapter.
type AuthService struct {
	repo    ports.UserRepository
	codec   ports.TokenCodec
	limiter ports.LoginLimiter // optional; nil disables throttling
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, limiter: limiter, logger: logger}
}

// Register hashes the password and writes a new identity. The is_admin flag
// is always false here; admin accounts are provisioned directly in the
// record store. The store's response body is passed through unchanged.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	body, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return body, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both return ErrInvalidCredentials so responses never reveal
// which field was wrong; upstream failures keep their own error so
// infrastructure trouble is not reported as bad credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooMany(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	// The token subject is the username, not the email: username is the
	// stable identifier every later resolution keys on.
	token, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	s.logger.Info().Str("username", user.Username).Msg("login successful")
	return token, user, nil
}

// LoadByUsername resolves a full identity for a token subject. No caching:
// every call goes to the record store so role changes apply immediately.
func (s *AuthService) LoadByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
