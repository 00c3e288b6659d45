package models

import (
	"time"
)

// Reminder represents a daily medicine reminder. RemindAt is a wall-clock
// "HH:MM" string; the reminder fires every day at that time until deleted.
type Reminder struct {
	ID           int64     `json:"id" db:"id"`
	ClientID     string    `json:"client_id" db:"client_id"`
	MedicineName string    `json:"medicine_name" db:"medicine_name"`
	RemindAt     string    `json:"remind_at" db:"remind_at"`
	LastFiredOn  *string   `json:"last_fired_on,omitempty" db:"last_fired_on"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}

func (Reminder) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS reminders (
		id BIGSERIAL PRIMARY KEY,
		client_id TEXT NOT NULL,
		medicine_name TEXT NOT NULL,
		remind_at TEXT NOT NULL,
		last_fired_on DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}

// ReminderNotification is one fired reminder, recorded for the client to poll.
type ReminderNotification struct {
	ID           string    `json:"id" db:"id"`
	ClientID     string    `json:"client_id" db:"client_id"`
	ReminderID   int64     `json:"reminder_id" db:"reminder_id"`
	MedicineName string    `json:"medicine_name" db:"medicine_name"`
	FiredAt      time.Time `json:"fired_at" db:"fired_at"`
	Seen         bool      `json:"seen" db:"seen"`
}

func (ReminderNotification) TableName() string {
	return "reminder_notifications"
}

func (ReminderNotification) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS reminder_notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		client_id TEXT NOT NULL,
		reminder_id BIGINT NOT NULL,
		medicine_name TEXT NOT NULL,
		fired_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		seen BOOLEAN NOT NULL DEFAULT FALSE
	);`
}
