package session

import (
	"strings"
	"sync"
	"time"

	"becak/internal/services"

	"github.com/google/uuid"
)

// Backend is everything the screens of a session call on the booking backend.
type Backend interface {
	services.OrdersAPI
	services.DriverAPI
	services.TariffsAPI
	services.PublicTariffSource
}

// Session is the in-memory application state of one browser session.
type Session struct {
	ID      string
	Store   *services.Store
	Entry   *services.OrderEntry
	Payment *services.PaymentScreen
	Tariffs *services.TariffAdmin

	lastSeen time.Time
}

// Registry hands out sessions by id and drops the ones idle longer than ttl.
type Registry struct {
	backend Backend
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(backend Backend, ttl time.Duration) *Registry {
	return &Registry{
		backend:  backend,
		ttl:      ttl,
		now:      time.Now,
		sessions: map[string]*Session{},
	}
}

// GetOrCreate returns the live session for id, or a fresh one (with a new id)
// when id is unknown or expired. created reports the latter.
func (r *Registry) GetOrCreate(id string) (s *Session, created bool) {
	id = strings.TrimSpace(id)
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok && id != "" {
		if !r.expired(s, now) {
			s.lastSeen = now
			return s, false
		}
		delete(r.sessions, id)
	}

	r.sweepLocked(now)
	s = r.newSession(now)
	r.sessions[s.ID] = s
	return s, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) newSession(now time.Time) *Session {
	store := services.NewStore(r.backend, r.backend)
	return &Session{
		ID:       uuid.NewString(),
		Store:    store,
		Entry:    services.NewOrderEntry(),
		Payment:  &services.PaymentScreen{},
		Tariffs:  services.NewTariffAdmin(r.backend, store),
		lastSeen: now,
	}
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
}
