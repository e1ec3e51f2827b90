package database

import (
	"time"
)

// Participant is one stored registration row. Cells are kept as trimmed
// strings exactly as imported; all derivation happens in the entries package
// on read.
type Participant struct {
	ID           int       `db:"participant_id"`
	Name         string    `db:"participant_name"`
	DateOfBirth  string    `db:"participant_dob"`
	Gender       string    `db:"participant_gender"`
	Contact      string    `db:"participant_contact"`
	Club         string    `db:"participant_club"`
	PrimaryEvent string    `db:"participant_event"`
	ExtraEvent   string    `db:"participant_extra_event"`
	BowSharing   string    `db:"participant_bow_sharing"`
	ImportedAt   time.Time `db:"participant_imported_at"`
}

// Import is one refresh of the participant snapshot.
type Import struct {
	ID           int       `db:"import_id"`
	Source       string    `db:"import_source"`
	Participants int       `db:"import_participants"`
	CreatedAt    time.Time `db:"import_created_at"`
}

type Session struct {
	ID        string    `db:"session_id"`
	CreatedAt time.Time `db:"session_created_at"`
	ExpiresAt time.Time `db:"session_expires_at"`
	UserID    string    `db:"session_user_id"`
	UserName  string    `db:"session_user_name"`
}
