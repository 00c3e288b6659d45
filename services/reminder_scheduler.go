package services

import (
	"fmt"
	"time"

	"pharmacy-server/database"

	"github.com/google/uuid"
)

// ReminderScheduler fires daily medicine reminders. It polls on a fixed
// interval and compares each reminder's HH:MM against the wall clock; a
// last-fired date guard keeps a reminder from firing twice in one day.
type ReminderScheduler struct {
	interval time.Duration
}

func NewReminderScheduler(interval time.Duration) *ReminderScheduler {
	return &ReminderScheduler{interval: interval}
}

// Start runs the polling loop in the background.
func (rs *ReminderScheduler) Start() {
	go func() {
		ticker := time.NewTicker(rs.interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := rs.ProcessDueReminders(); err != nil {
				fmt.Printf("⚠️ Reminder processing failed: %v\n", err)
			}
		}
	}()
}

// ProcessDueReminders fires every reminder that is due right now.
func (rs *ReminderScheduler) ProcessDueReminders() error {
	now := time.Now()

	query := `
		SELECT id, client_id, medicine_name, remind_at, to_char(last_fired_on, 'YYYY-MM-DD')
		FROM reminders
		WHERE last_fired_on IS DISTINCT FROM CURRENT_DATE
		ORDER BY id ASC
		LIMIT 100
	`
	rows, err := database.Database.Query(query)
	if err != nil {
		return fmt.Errorf("failed to fetch reminders: %w", err)
	}
	defer rows.Close()

	type due struct {
		id           int64
		clientID     string
		medicineName string
	}
	var toFire []due

	for rows.Next() {
		var (
			id                     int64
			clientID, medicineName string
			remindAt               string
			lastFiredOn            *string
		)
		if err := rows.Scan(&id, &clientID, &medicineName, &remindAt, &lastFiredOn); err != nil {
			continue
		}
		if reminderDue(remindAt, lastFiredOn, now) {
			toFire = append(toFire, due{id: id, clientID: clientID, medicineName: medicineName})
		}
	}

	for _, r := range toFire {
		if err := rs.fire(r.id, r.clientID, r.medicineName); err != nil {
			fmt.Printf("⚠️ Failed to fire reminder %d: %v\n", r.id, err)
		}
	}
	return nil
}

// fire marks the reminder fired and records its notification in one
// transaction, so a failure cannot leave a notification without the
// last-fired guard and have the next tick duplicate it.
func (rs *ReminderScheduler) fire(id int64, clientID, medicineName string) error {
	tx, err := database.Database.Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(
		`UPDATE reminders SET last_fired_on = CURRENT_DATE WHERE id = $1 AND last_fired_on IS DISTINCT FROM CURRENT_DATE`,
		id,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		// Another tick already fired it today.
		tx.Rollback()
		return nil
	}

	if _, err := tx.Exec(
		`INSERT INTO reminder_notifications (id, client_id, reminder_id, medicine_name) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), clientID, id, medicineName,
	); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	Bus.Publish(TopicReminderDue, ReminderDueEvent{ClientID: clientID, ReminderID: id, MedicineName: medicineName})
	fmt.Printf("🔔 Reminder fired: %s for client %s\n", medicineName, clientID)
	return nil
}

// reminderDue reports whether a reminder at remindAt ("HH:MM") should fire
// at time now, given the date it last fired. Zero-padded HH:MM strings
// compare correctly as text.
func reminderDue(remindAt string, lastFiredOn *string, now time.Time) bool {
	if len(remindAt) != 5 || remindAt[2] != ':' {
		return false
	}
	if lastFiredOn != nil && *lastFiredOn == now.Format("2006-01-02") {
		return false
	}
	return remindAt <= now.Format("15:04")
}
