package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"pharmacy-server/services"

	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

type translateRequest struct {
	TargetLanguage string `json:"target_language" binding:"required"`
}

type askAssistantRequest struct {
	ProductName string `json:"product_name,omitempty"`
	Description string `json:"description,omitempty"`
	CustomQuery string `json:"custom_query,omitempty"`
}

// GetChat returns the conversation state and full transcript.
func GetChat(c *gin.Context) {
	id := clientID(c)
	conv, err := Chat.Conversation(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation"})
		return
	}
	messages, err := Chat.History(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation": conv, "messages": messages})
}

// OpenChat moves the conversation to idle and clears the unread flag.
func OpenChat(c *gin.Context) {
	conv, err := Chat.Open(clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open chat"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// CloseChat closes the conversation panel.
func CloseChat(c *gin.Context) {
	conv, err := Chat.Close(clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close chat"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// SendChatMessage submits one user turn and returns the assistant reply. A
// second send while one is outstanding is rejected with 409.
func SendChatMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := Chat.SendTurn(c.Request.Context(), clientID(c), req.Text, req.Image)
	if err != nil {
		if errors.Is(err, services.ErrRequestInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "A message is already being processed"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

// ClearChat resets the transcript to the seeded welcome message.
func ClearChat(c *gin.Context) {
	welcome, err := Chat.Clear(clientID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": []interface{}{welcome}})
}

// TranslateChatMessage swaps a message for its translation. Translation
// failures degrade to the unchanged message, mirroring the storefront's
// silent no-op behavior.
func TranslateChatMessage(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_language is required"})
		return
	}

	m, err := Chat.TranslateMessage(c.Request.Context(), clientID(c), c.Param("id"), req.TargetLanguage)
	if err != nil {
		if m == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		fmt.Printf("translation degraded to original for message %s: %v\n", c.Param("id"), err)
	}
	c.JSON(http.StatusOK, m)
}

// RevertChatMessage restores a translated message's original text.
func RevertChatMessage(c *gin.Context) {
	m, err := Chat.RevertMessage(clientID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// AskAssistant publishes a generic ask-assistant event, the API twin of the
// storefront's "ask about this" affordance.
func AskAssistant(c *gin.Context) {
	var req askAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ProductName == "" && req.CustomQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name or custom_query is required"})
		return
	}

	services.Bus.Publish(services.TopicAskAssistant, services.AskAssistantEvent{
		ClientID:    clientID(c),
		ProductName: req.ProductName,
		Description: req.Description,
		CustomQuery: req.CustomQuery,
	})
	c.JSON(http.StatusAccepted, gin.H{"status": "asked"})
}

// SynthesizeSpeech turns text into audio via the provider's speech endpoint.
func SynthesizeSpeech(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	audio, err := Speech.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Speech synthesis unavailable"})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
