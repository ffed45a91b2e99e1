package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korbahq/korba-app/models"
)

// memoryStorage mimics the durable session slot: one record, last write wins.
type memoryStorage struct {
	saved   *models.User
	loadErr error
	saveErr error
}

func (m *memoryStorage) Load() (*models.User, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.saved, nil
}

func (m *memoryStorage) Save(user *models.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	u := *user
	m.saved = &u
	return nil
}

func (m *memoryStorage) Clear() error {
	m.saved = nil
	return nil
}

func TestLoginMergesMockIdentityWithEmail(t *testing.T) {
	storage := &memoryStorage{}
	sessions := NewSessionStore(storage)

	user := sessions.Login("a@b.com", "x")

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, user.Phone)
	assert.NotEmpty(t, user.Address)

	// Persisted copy matches the live session.
	assert.NotNil(t, storage.saved)
	assert.Equal(t, "a@b.com", storage.saved.Email)
}

func TestLoginThenRestoreRoundTrip(t *testing.T) {
	storage := &memoryStorage{}
	NewSessionStore(storage).Login("a@b.com", "x")

	// Simulate a process restart over the same storage.
	restarted := NewSessionStore(storage)
	restarted.Restore()

	current := restarted.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "a@b.com", current.Email)
}

func TestLogoutThenRestoreYieldsNoSession(t *testing.T) {
	storage := &memoryStorage{}
	sessions := NewSessionStore(storage)
	sessions.Login("a@b.com", "x")
	sessions.Logout()

	assert.Nil(t, sessions.Current())

	restarted := NewSessionStore(storage)
	restarted.Restore()
	assert.Nil(t, restarted.Current())
}

func TestSignupCreatesFreshIdentity(t *testing.T) {
	sessions := NewSessionStore(&memoryStorage{})

	user := sessions.Signup("Amna", "amna@example.com", "pw")

	assert.NotEqual(t, "u1", user.ID)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Amna", user.Name)
	assert.Equal(t, "amna@example.com", user.Email)
	assert.Empty(t, user.Phone)
	assert.Empty(t, user.Address)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	storage := &memoryStorage{}
	sessions := NewSessionStore(storage)
	sessions.Signup("Amna", "amna@example.com", "pw")

	updated := sessions.UpdateProfile(models.ProfileUpdate{Phone: "+92 321 7654321"})

	assert.NotNil(t, updated)
	assert.Equal(t, "+92 321 7654321", updated.Phone)
	assert.Equal(t, "Amna", updated.Name, "untouched fields must survive the merge")
	assert.Equal(t, "+92 321 7654321", storage.saved.Phone)
}

func TestUpdateProfileWithoutSessionIsNoOp(t *testing.T) {
	storage := &memoryStorage{}
	sessions := NewSessionStore(storage)

	updated := sessions.UpdateProfile(models.ProfileUpdate{Name: "Ghost"})

	assert.Nil(t, updated)
	assert.Nil(t, sessions.Current())
	assert.Nil(t, storage.saved)
}

func TestRestoreSurvivesStorageFailure(t *testing.T) {
	sessions := NewSessionStore(&memoryStorage{loadErr: errors.New("disk on fire")})

	// Must not panic and must leave us signed out.
	sessions.Restore()
	assert.Nil(t, sessions.Current())
}
