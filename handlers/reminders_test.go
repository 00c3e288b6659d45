package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmacy-server/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock setup failed: %v", err)
	}
	prev := DB
	DB = &database.DB{DB: db}
	t.Cleanup(func() {
		DB = prev
		db.Close()
	})
	return mock
}

func TestUnseenNotificationsMarksOnlyReturnedRows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"id", "reminder_id", "medicine_name", "fired_at", "seen"}).
		AddRow("n1", int64(7), "Dolo 650", time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), false).
		AddRow("n2", int64(8), "Shelcal", time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC), false)
	mock.ExpectQuery("SELECT id, reminder_id, medicine_name").
		WithArgs("default").
		WillReturnRows(rows)
	// The update is scoped to the ids the client was shown, not every
	// unseen row.
	mock.ExpectExec("UPDATE reminder_notifications SET seen = TRUE WHERE client_id = .+ AND id = ANY").
		WithArgs("default", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	router := gin.New()
	router.GET("/api/v1/reminders/notifications", GetReminderNotifications)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/notifications?unseen=true", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("seen update not scoped to the returned ids: %v", err)
	}
}

func TestNotificationsWithoutUnseenFilterDoNotMarkSeen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := mockDB(t)

	rows := sqlmock.NewRows([]string{"id", "reminder_id", "medicine_name", "fired_at", "seen"}).
		AddRow("n1", int64(7), "Dolo 650", time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), true)
	mock.ExpectQuery("SELECT id, reminder_id, medicine_name").
		WithArgs("default").
		WillReturnRows(rows)

	router := gin.New()
	router.GET("/api/v1/reminders/notifications", GetReminderNotifications)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/notifications", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("plain listing must not touch the seen flag: %v", err)
	}
}
