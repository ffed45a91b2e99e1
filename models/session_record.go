package models

import "time"

// SessionRecord is the persisted copy of the current session: a single row
// under a fixed key holding the serialized user. Last write wins.
type SessionRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Payload   string `gorm:"type:text; not null"`
	UpdatedAt time.Time
}
