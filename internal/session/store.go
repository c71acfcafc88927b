package session

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/models"
)

// Durable storage keys for the persisted session.
const (
	keyToken = "auth_token"
	keyUser  = "user_info"
)

// Store is the single source of truth for the console's authentication state.
// The in-memory state is authoritative; the session_kv table only exists so a
// session survives process restarts. Writes to it are best-effort.
//
// Invariant: authenticated is true exactly when user is non-nil and token is
// non-empty. The three fields are only ever changed together under mu.
type Store struct {
	db *sql.DB

	mu            sync.RWMutex
	user          *models.User
	token         string
	authenticated bool
}

// NewStore creates a session store and restores any persisted session. A
// missing or malformed persisted session yields a logged-out store, never an
// error: startup must not fail on stale storage.
func NewStore(db *sql.DB) *Store {
	s := &Store{db: db}
	s.restore()
	return s
}

// Login persists the session under the durable keys and then activates it in
// memory. A storage failure is logged and otherwise ignored; the in-memory
// session still becomes active, it just will not survive a restart.
func (s *Store) Login(user models.User, token string) {
	userJSON, err := json.Marshal(user)
	if err == nil {
		if err = s.setValue(keyToken, token); err == nil {
			err = s.setValue(keyUser, string(userJSON))
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to persist session; it will not survive a restart")
	}

	s.mu.Lock()
	u := user
	s.user = &u
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
}

// Logout removes the durable keys and clears the in-memory session. Calling
// it on an already logged-out store is a no-op with the same end state.
func (s *Store) Logout() {
	if err := s.deleteValue(keyToken); err != nil {
		log.Warn().Err(err).Msg("Failed to remove persisted token")
	}
	if err := s.deleteValue(keyUser); err != nil {
		log.Warn().Err(err).Msg("Failed to remove persisted user info")
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()
}

// IsAuthenticated reports whether a session is currently active.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns the signed-in user, or false when no session is active.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the current session token, or the empty string when no
// session is active.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// restore loads the persisted session, if any. Both keys must be present and
// the user record must parse; anything else leaves the store logged out.
func (s *Store) restore() {
	token, err := s.getValue(keyToken)
	if err != nil || token == "" {
		return
	}
	userJSON, err := s.getValue(keyUser)
	if err != nil || userJSON == "" {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		log.Warn().Err(err).Msg("Persisted user info is malformed; starting logged out")
		return
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	log.Info().Str("username", user.Username).Msg("Restored session from storage")
}

func (s *Store) getValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session_kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) setValue(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO session_kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

func (s *Store) deleteValue(key string) error {
	_, err := s.db.Exec("DELETE FROM session_kv WHERE key = ?", key)
	return err
}
