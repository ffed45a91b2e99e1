package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/utils"
)

// The fixed identity every login resolves to. There is no credential check;
// only the email follows the form input.
var mockIdentity = models.User{
	ID:      "u1",
	Name:    "John Doe",
	Phone:   "+92 300 1234567",
	Address: "House 42, Sector A, Noshahra Cantt",
}

// SessionStorage is the durable backend for the session record.
type SessionStorage interface {
	Load() (*models.User, error)
	Save(*models.User) error
	Clear() error
}

// SessionStore owns the current session. State transitions are pure; the
// storage write happens as an explicit step after each one, so a failed write
// leaves the in-memory session in place (last write wins on the next change).
type SessionStore struct {
	mu      sync.RWMutex
	current *models.User
	storage SessionStorage
}

func NewSessionStore(storage SessionStorage) *SessionStore {
	return &SessionStore{storage: storage}
}

// Restore loads the persisted session, if any. A missing or malformed record
// yields no session and no error; restore never blocks startup.
func (s *SessionStore) Restore() {
	user, err := s.storage.Load()
	if err != nil || user == nil {
		return
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
}

// Login always succeeds: the mock identity merged with the supplied email
// becomes the current session. The password is accepted unchecked.
func (s *SessionStore) Login(email, _ string) models.User {
	user := mockIdentity
	user.Email = email

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	s.persist(&user)
	return user
}

// Signup always succeeds: a fresh identity with the supplied name and email,
// no phone or address yet.
func (s *SessionStore) Signup(name, email, _ string) models.User {
	user := models.User{
		ID:    "u" + uuid.NewString(),
		Name:  name,
		Email: email,
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	s.persist(&user)
	return user
}

// Logout clears the current session and its persisted copy.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		logStorageError(err)
	}
}

// UpdateProfile merges the non-empty fields into the active session and
// re-persists it. With no active session it is a silent no-op.
func (s *SessionStore) UpdateProfile(update models.ProfileUpdate) *models.User {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}

	if v := strings.TrimSpace(update.Name); v != "" {
		s.current.Name = v
	}
	if v := strings.TrimSpace(update.Email); v != "" {
		s.current.Email = v
	}
	if v := strings.TrimSpace(update.Phone); v != "" {
		s.current.Phone = v
	}
	if v := strings.TrimSpace(update.Address); v != "" {
		s.current.Address = v
	}
	user := *s.current
	s.mu.Unlock()

	s.persist(&user)
	return &user
}

// Current returns a copy of the active session, or nil when signed out.
func (s *SessionStore) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

func (s *SessionStore) persist(user *models.User) {
	if err := s.storage.Save(user); err != nil {
		logStorageError(err)
	}
}

// Storage failures are diagnostics only; session transitions never fail.
func logStorageError(err error) {
	if utils.ErrorLogger != nil {
		utils.ErrorLogger.Printf("session storage: %v", err)
	}
}
