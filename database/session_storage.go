package database

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/korbahq/korba-app/models"
)

// SessionKey is the fixed storage namespace for the persisted session.
const SessionKey = "korba_user"

// SessionRecordStorage persists the current session as a single row holding
// the serialized user. It is the server-side stand-in for the browser's
// durable storage: read once at startup, written on every session change.
type SessionRecordStorage struct {
	DB *gorm.DB
}

func NewSessionRecordStorage(db *gorm.DB) *SessionRecordStorage {
	return &SessionRecordStorage{DB: db}
}

// Load returns the persisted user, or (nil, nil) when the record is absent or
// malformed. Corrupt payloads must never fail startup.
func (s *SessionRecordStorage) Load() (*models.User, error) {
	var record models.SessionRecord
	err := s.DB.First(&record, "key = ?", SessionKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(record.Payload), &user); err != nil {
		// Treat a corrupt record the same as no record.
		return nil, nil
	}
	return &user, nil
}

func (s *SessionRecordStorage) Save(user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}

	record := models.SessionRecord{
		Key:     SessionKey,
		Payload: string(payload),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&record).Error
}

func (s *SessionRecordStorage) Clear() error {
	return s.DB.Delete(&models.SessionRecord{}, "key = ?", SessionKey).Error
}
