package handlers

import (
	"database/sql"
	"net/http"

	"pharmacy-server/models"

	"github.com/gin-gonic/gin"
)

// GetConsent returns the client's cookie-consent decision, if any.
func GetConsent(c *gin.Context) {
	var status string
	err := DB.QueryRow(`SELECT status FROM consents WHERE client_id = $1`, clientID(c)).Scan(&status)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, gin.H{"status": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// SetConsent stores the decision. Last writer wins.
func SetConsent(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if req.Status != models.ConsentGranted && req.Status != models.ConsentDenied {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be 'granted' or 'denied'"})
		return
	}

	_, err := DB.Exec(`
		INSERT INTO consents (client_id, status, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (client_id) DO UPDATE SET status = $2, updated_at = now()
	`, clientID(c), req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store consent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
