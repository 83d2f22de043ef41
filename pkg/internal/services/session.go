package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SessionState holds the authenticated identity, readable by every screen.
// Only its own login, signup and logout mutate it.
type SessionState struct {
	gateway *api.Client
	current *models.Session
}

func NewSessionState(gateway *api.Client) *SessionState {
	return &SessionState{gateway: gateway}
}

func (s *SessionState) Current() *models.Session {
	return s.current
}

func (s *SessionState) Authenticated() bool {
	return s.current != nil
}

func (s *SessionState) Login(ctx context.Context, email, password string) (models.Session, error) {
	data := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}{email, password}

	if err := validate.Struct(data); err != nil {
		return models.Session{}, err
	}

	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}

	s.current = &session
	log.Info().Str("user", session.Username).Msg("Logged in.")
	return session, nil
}

func (s *SessionState) Signup(ctx context.Context, username, email, password string) (models.Session, error) {
	data := struct {
		Username string `validate:"required,max=256"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}{username, email, password}

	if err := validate.Struct(data); err != nil {
		return models.Session{}, err
	}

	session, err := s.gateway.Signup(ctx, username, email, password)
	if err != nil {
		return models.Session{}, err
	}

	s.current = &session
	log.Info().Str("user", session.Username).Msg("Signed up.")
	return session, nil
}

// Logout clears the session unconditionally; no backend call is involved.
func (s *SessionState) Logout() {
	s.current = nil
}

// TokenExpiry reads the exp claim off the bearer token without verifying it.
// The token stays opaque when it is not a parseable JWT.
func (s *SessionState) TokenExpiry() (time.Time, bool) {
	if s.current == nil {
		return time.Time{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.current.IDToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	expiry, err := token.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}

// SweepExpired drops a session whose token has lapsed. Run periodically as
// housekeeping; sessions with opaque tokens are never swept.
func (s *SessionState) SweepExpired() bool {
	expiry, ok := s.TokenExpiry()
	if !ok || expiry.After(time.Now()) {
		return false
	}

	log.Warn().Time("expired_at", expiry).Msg("Session token expired, logging out.")
	s.current = nil
	return true
}
