package services

import (
	"errors"
	"testing"
	"time"

	"pharmacy-server/database"

	"github.com/DATA-DOG/go-sqlmock"
)

// mockDatabase swaps the global connection for a sqlmock one.
func mockDatabase(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock setup failed: %v", err)
	}
	prev := database.Database
	database.Database = &database.DB{DB: db}
	t.Cleanup(func() {
		database.Database = prev
		db.Close()
	})
	return mock
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local)
	today := "2026-09-01"
	yesterday := "2026-08-31"

	tests := []struct {
		name        string
		remindAt    string
		lastFiredOn *string
		want        bool
	}{
		{"time reached, never fired", "09:30", nil, true},
		{"time passed, never fired", "08:00", nil, true},
		{"time not reached yet", "21:00", nil, false},
		{"already fired today", "08:00", &today, false},
		{"fired yesterday, fires again", "08:00", &yesterday, true},
		{"malformed time", "9:30", nil, false},
		{"garbage time", "soon", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reminderDue(tt.remindAt, tt.lastFiredOn, now); got != tt.want {
				t.Errorf("reminderDue(%q, %v) = %v, want %v", tt.remindAt, tt.lastFiredOn, got, tt.want)
			}
		})
	}
}

func TestReminderDueMidnightBoundary(t *testing.T) {
	justAfterMidnight := time.Date(2026, 9, 2, 0, 0, 30, 0, time.Local)
	yesterday := "2026-09-01"

	// A reminder that fired yesterday becomes eligible again at its time the
	// next day, not at midnight.
	if reminderDue("08:00", &yesterday, justAfterMidnight) {
		t.Error("reminder must wait for its wall-clock time on the new day")
	}
	if !reminderDue("00:00", &yesterday, justAfterMidnight) {
		t.Error("a 00:00 reminder is due right after midnight")
	}
}

func TestFireGuardsBeforeNotifying(t *testing.T) {
	mock := mockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reminders SET last_fired_on").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO reminder_notifications").
		WithArgs(sqlmock.AnyArg(), "c1", int64(7), "Dolo 650").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rs := NewReminderScheduler(time.Minute)
	if err := rs.fire(7, "c1", "Dolo 650"); err != nil {
		t.Fatalf("fire failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("fire must update the guard, then notify, in one transaction: %v", err)
	}
}

func TestFireSkipsWhenAlreadyFiredToday(t *testing.T) {
	mock := mockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reminders SET last_fired_on").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	rs := NewReminderScheduler(time.Minute)
	if err := rs.fire(7, "c1", "Dolo 650"); err != nil {
		t.Fatalf("fire failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("an already-fired reminder must not insert a notification: %v", err)
	}
}

func TestFireRollsBackOnNotificationFailure(t *testing.T) {
	mock := mockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reminders SET last_fired_on").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO reminder_notifications").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	rs := NewReminderScheduler(time.Minute)
	if err := rs.fire(7, "c1", "Dolo 650"); err == nil {
		t.Fatal("fire must report the failed insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("a failed notification insert must roll the guard back: %v", err)
	}
}
