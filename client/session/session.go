// Package session persists the admin login across restarts: three string
// values under fixed keys, written on login, cleared on logout.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"someswar-temple/internal/models"
)

type Session struct {
	Token    string `json:"adminToken"`
	Username string `json:"adminUsername"`
	Role     string `json:"adminRole"`
}

func (s Session) IsAdmin() bool {
	return s.Token != "" && s.Role == models.UserRoleAdmin
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session. A missing file is an empty session, not
// an error.
func (s *Store) Load() (Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// A corrupt session file is treated as logged out.
		return Session{}, nil
	}
	return sess, nil
}

func (s *Store) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// GuardDecision is what the admin route guard does with a session.
type GuardDecision struct {
	Allowed  bool
	Redirect string
}

// RequireAdmin gates the dashboard and catalog admin routes. The persisted
// session is trusted for UI gating only; the server re-validates the token
// on every admin call.
func RequireAdmin(sess Session) GuardDecision {
	if sess.IsAdmin() {
		return GuardDecision{Allowed: true}
	}
	return GuardDecision{Allowed: false, Redirect: "/admin/login"}
}
