package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"pharmacy-server/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

var remindAtPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type createReminderRequest struct {
	MedicineName string `json:"medicine_name" binding:"required"`
	RemindAt     string `json:"remind_at" binding:"required"`
}

// GetReminders lists the client's reminders.
func GetReminders(c *gin.Context) {
	rows, err := DB.Query(`
		SELECT id, medicine_name, remind_at, to_char(last_fired_on, 'YYYY-MM-DD'), created_at
		FROM reminders
		WHERE client_id = $1
		ORDER BY remind_at ASC
	`, clientID(c))
	if err != nil {
		fmt.Printf("reminders query error: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminders"})
		return
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.MedicineName, &r.RemindAt, &r.LastFiredOn, &r.CreatedAt); err != nil {
			continue
		}
		r.ClientID = clientID(c)
		reminders = append(reminders, r)
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// CreateReminder adds a daily reminder at an HH:MM wall-clock time.
func CreateReminder(c *gin.Context) {
	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "medicine_name and remind_at are required"})
		return
	}
	if !remindAtPattern.MatchString(req.RemindAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "remind_at must be HH:MM in 24-hour format"})
		return
	}

	var r models.Reminder
	err := DB.QueryRow(`
		INSERT INTO reminders (client_id, medicine_name, remind_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, clientID(c), req.MedicineName, req.RemindAt).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		fmt.Printf("reminder insert error: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	r.ClientID = clientID(c)
	r.MedicineName = req.MedicineName
	r.RemindAt = req.RemindAt
	c.JSON(http.StatusCreated, r)
}

// DeleteReminder removes a reminder; it stops firing immediately.
func DeleteReminder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder id"})
		return
	}

	result, err := DB.Exec(`DELETE FROM reminders WHERE id = $1 AND client_id = $2`, id, clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetReminderNotifications returns fired reminders, newest first. With
// ?unseen=true it also marks them seen.
func GetReminderNotifications(c *gin.Context) {
	unseenOnly := c.Query("unseen") == "true"

	query := `
		SELECT id, reminder_id, medicine_name, fired_at, seen
		FROM reminder_notifications
		WHERE client_id = $1
	`
	if unseenOnly {
		query += ` AND seen = FALSE`
	}
	query += ` ORDER BY fired_at DESC LIMIT 50`

	rows, err := DB.Query(query, clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}
	defer rows.Close()

	notifications := []models.ReminderNotification{}
	for rows.Next() {
		var n models.ReminderNotification
		if err := rows.Scan(&n.ID, &n.ReminderID, &n.MedicineName, &n.FiredAt, &n.Seen); err != nil {
			continue
		}
		n.ClientID = clientID(c)
		notifications = append(notifications, n)
	}

	if unseenOnly && len(notifications) > 0 {
		// Only the rows actually returned are marked seen; anything past the
		// LIMIT stays unseen for the next fetch.
		ids := make([]string, len(notifications))
		for i, n := range notifications {
			ids[i] = n.ID
		}
		if _, err := DB.Exec(`UPDATE reminder_notifications SET seen = TRUE WHERE client_id = $1 AND id = ANY($2)`, clientID(c), pq.Array(ids)); err != nil {
			fmt.Printf("failed to mark notifications seen: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
