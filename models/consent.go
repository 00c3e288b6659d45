package models

import (
	"time"
)

// Consent statuses.
const (
	ConsentGranted = "granted"
	ConsentDenied  = "denied"
)

// ConsentRecord stores a client's cookie-consent decision. Last writer wins;
// there is no versioning.
type ConsentRecord struct {
	ClientID  string    `json:"client_id" db:"client_id"`
	Status    string    `json:"status" db:"status"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (ConsentRecord) TableName() string {
	return "consents"
}

func (ConsentRecord) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS consents (
		client_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
