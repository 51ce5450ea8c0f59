package web

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/phrazzld/quire/internal/config"
)

// Session keys.
const (
	flashKey  = "flash"
	userIDKey = "user_id"
)

// NewSessionManager configures the cookie session of the HTML pages. Session
// data lives in scs's in-process store.
func NewSessionManager(cfg config.SessionConfig) *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = time.Duration(cfg.LifetimeHours) * time.Hour
	sm.Cookie.Name = cfg.CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = cfg.SecureCookie
	return sm
}

// Session carries flash messages and the signed-in user between requests.
type Session struct {
	sm *scs.SessionManager
}

// NewSession wraps sm.
func NewSession(sm *scs.SessionManager) *Session {
	if sm == nil {
		panic("session manager cannot be nil")
	}
	return &Session{sm: sm}
}

// LoadAndSave loads the session for each request and saves it afterwards.
func (s *Session) LoadAndSave(next http.Handler) http.Handler {
	return s.sm.LoadAndSave(next)
}

// Flash queues msg for the next rendered page.
func (s *Session) Flash(ctx context.Context, msg string) {
	msgs, _ := s.sm.Get(ctx, flashKey).([]string)
	s.sm.Put(ctx, flashKey, append(msgs, msg))
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes(ctx context.Context) []string {
	msgs, _ := s.sm.Pop(ctx, flashKey).([]string)
	return msgs
}

// LogIn binds userID to a fresh session token.
func (s *Session) LogIn(ctx context.Context, userID uuid.UUID) error {
	if err := s.sm.RenewToken(ctx); err != nil {
		return err
	}
	s.sm.Put(ctx, userIDKey, userID.String())
	return nil
}

// LogOut destroys the session.
func (s *Session) LogOut(ctx context.Context) error {
	return s.sm.Destroy(ctx)
}

// UserID returns the signed-in user's id.
func (s *Session) UserID(ctx context.Context) (uuid.UUID, bool) {
	raw := s.sm.GetString(ctx, userIDKey)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// forget drops the signed-in user but keeps the session.
func (s *Session) forget(ctx context.Context) {
	s.sm.Remove(ctx, userIDKey)
}
