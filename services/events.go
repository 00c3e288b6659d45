package services

import (
	"github.com/asaskevich/EventBus"
)

// Bus is the in-process event bus linking UI-facing endpoints to the
// assistant and the reminder scheduler.
var Bus = EventBus.New()

// Event topics.
const (
	TopicAskAssistant = "assistant:ask"
	TopicReminderDue  = "reminder:due"
)

// AskAssistantEvent asks the assistant a question on behalf of another part
// of the system. Either ProductName (+Description) or CustomQuery is set.
type AskAssistantEvent struct {
	ClientID    string `json:"client_id"`
	ProductName string `json:"product_name,omitempty"`
	Description string `json:"description,omitempty"`
	CustomQuery string `json:"custom_query,omitempty"`
}

// Question renders the event as the chat turn to submit.
func (e AskAssistantEvent) Question() string {
	if e.CustomQuery != "" {
		return e.CustomQuery
	}
	if e.Description != "" {
		return "Tell me about " + e.ProductName + ". " + e.Description
	}
	return "Tell me about " + e.ProductName + "."
}

// ReminderDueEvent is published when a medicine reminder fires.
type ReminderDueEvent struct {
	ClientID     string `json:"client_id"`
	ReminderID   int64  `json:"reminder_id"`
	MedicineName string `json:"medicine_name"`
}
