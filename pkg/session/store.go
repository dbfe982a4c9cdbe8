package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName = "session_token"

	// UserIDKey holds the authenticated account identifier once login succeeds.
	UserIDKey = "user_id"
)

// Record is the server-side state tied to one session token. A record starts
// anonymous; login writes the user identifier into it. There is no logout
// transition, records only disappear when the store's TTL expires them.
type Record struct {
	mu        sync.RWMutex
	token     string
	values    map[string]any
	createdAt time.Time
	expiresAt time.Time
}

func (r *Record) Token() string {
	return r.token
}

func (r *Record) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// UserID returns the authenticated account identifier, or "" while the
// session is still anonymous.
func (r *Record) UserID() string {
	if v, ok := r.Get(UserIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func (r *Record) set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

func (r *Record) expired() bool {
	return time.Now().After(r.expiresAt)
}

// Store maps opaque cookie tokens to session records. Safe for concurrent
// use by independent requests.
type Store struct {
	mu      sync.RWMutex
	records map[string]*Record
	ttl     time.Duration
	stopCh  chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		records: make(map[string]*Record),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// GetOrCreate returns the record for the request's session cookie. When the
// cookie is absent, unknown, or expired, a fresh token and empty record are
// allocated and the cookie is set on the response.
func (s *Store) GetOrCreate(w http.ResponseWriter, r *http.Request) *Record {
	if cookie, err := r.Cookie(CookieName); err == nil {
		s.mu.RLock()
		record, ok := s.records[cookie.Value]
		s.mu.RUnlock()
		if ok && !record.expired() {
			return record
		}
	}

	now := time.Now()
	record := &Record{
		token:     uuid.New().String(),
		values:    make(map[string]any),
		createdAt: now,
		expiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.records[record.token] = record
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    record.token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return record
}

// Set mutates the record; the change is visible to every subsequent request
// bearing the same token.
func (s *Store) Set(record *Record, key string, value any) {
	record.set(key, value)
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for token, record := range s.records {
				if record.expired() {
					delete(s.records, token)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// Stop terminates the cleanup goroutine. Live records stay readable until
// process exit.
func (s *Store) Stop() {
	close(s.stopCh)
}
