package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// AuthService verifies credentials and drives the session lifecycle. The
// original system compared plaintext passwords; this implementation stores
// bcrypt hashes and relies on bcrypt's constant-time comparison instead.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, secret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Login authenticates and establishes a session. Unknown usernames and wrong
// passwords fail identically with ErrAccessDenied.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	sess, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.signToken(sess)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.logger.Info().Str("user", user.ID).Str("role", user.Role).Msg("login")
	return token, user, nil
}

// authenticate looks the user up by exact username and checks the password.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrAccessDenied
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccessDenied
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Info().Str("username", username).Msg("failed login attempt")
		return nil, domain.ErrAccessDenied
	}
	return user, nil
}

// Logout destroys the server-side session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Whoami loads the user behind an already-resolved session.
func (s *AuthService) Whoami(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.Find(ctx, userID)
}

// ResolveSession validates a cookie token and returns the live session it
// names. Any parse, signature or lookup failure reads as an anonymous caller.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*ports.Session, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrAccessDenied
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrAccessDenied
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, domain.ErrAccessDenied
	}
	return sess, nil
}

// TouchSession slides the session's idle-expiry window.
func (s *AuthService) TouchSession(ctx context.Context, sessionID string) error {
	return s.sessions.Touch(ctx, sessionID)
}

func (s *AuthService) signToken(sess *ports.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": sess.ID,
		"uid": sess.UserID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
