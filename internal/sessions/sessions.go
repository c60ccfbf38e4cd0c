// Package sessions keeps per-visitor proposal and polishing flows keyed by
// a session cookie. Sessions live in memory and expire after a period of
// inactivity.
package sessions

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/internal/flow"
	"github.com/JaimeStill/discourse/pkg/lifecycle"
)

// Session holds one visitor's independent flows and selected style.
type Session struct {
	ID       string
	Proposal *flow.Flow[composer.ProposalResult]
	Polish   *flow.Flow[composer.PolishResult]

	mu       sync.Mutex
	style    composer.Style
	lastSeen time.Time
}

// Style returns the selected polishing style.
func (s *Session) Style() composer.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SetStyle selects the polishing style.
func (s *Session) SetStyle(style composer.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = style
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Config controls cookie naming and expiry.
type Config struct {
	CookieName    string
	TTL           time.Duration
	SweepInterval time.Duration
	Path          string
}

// Store is an in-memory session registry.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an empty Store.
func New(cfg Config, logger *slog.Logger) *Store {
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	return &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		logger:   logger.With("system", "sessions"),
		now:      time.Now,
	}
}

// SetClock replaces the time source.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Create registers a fresh session with idle flows and the warm style.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		Proposal: flow.New[composer.ProposalResult](),
		Polish:   flow.New[composer.PolishResult](),
		style:    composer.StyleWarm,
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id and marks it active.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Resolve returns the session named by the request cookie, creating one
// and setting the cookie when it is absent or expired.
func (s *Store) Resolve(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		if sess, ok := s.Get(c.Value); ok {
			return sess
		}
	}

	sess := s.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    sess.ID,
		Path:     s.cfg.Path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle longer than the TTL and returns how many
// were removed. A non-positive TTL disables expiry.
func (s *Store) Sweep() int {
	if s.cfg.TTL <= 0 {
		return 0
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.cfg.TTL {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Start registers the periodic sweep and a shutdown hook that drops all
// sessions.
func (s *Store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info(
		"starting session sweeper",
		"ttl", s.cfg.TTL,
		"interval", s.cfg.SweepInterval,
	)

	lc.Every(s.cfg.SweepInterval, func(context.Context) {
		if n := s.Sweep(); n > 0 {
			s.logger.Info("expired sessions removed", "count", n)
		}
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()

		s.mu.Lock()
		n := len(s.sessions)
		clear(s.sessions)
		s.mu.Unlock()

		s.logger.Info("sessions released", "count", n)
	})

	return nil
}
