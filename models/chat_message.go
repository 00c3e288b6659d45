package models

// GroundingSource is a citation the AI provider attached to a reply.
type GroundingSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ChatMessage represents one transcript entry of the assistant conversation
type ChatMessage struct {
	ID           string            `json:"id" db:"id"`
	ClientID     string            `json:"-" db:"client_id"`
	Text         string            `json:"text" db:"text"`
	OriginalText string            `json:"originalText,omitempty" db:"original_text"`
	Image        string            `json:"image,omitempty" db:"image"`
	IsUser       bool              `json:"isUser" db:"is_user"`
	Timestamp    int64             `json:"timestamp" db:"timestamp"`
	Products     []Product         `json:"products,omitempty" db:"products"`
	Sources      []GroundingSource `json:"sources,omitempty" db:"sources"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (ChatMessage) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		text TEXT NOT NULL,
		original_text TEXT,
		image TEXT,
		is_user BOOLEAN NOT NULL DEFAULT FALSE,
		timestamp BIGINT NOT NULL,
		products JSONB,
		sources JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_chat_messages_client ON chat_messages(client_id, timestamp);`
}

// Conversation tracks the assistant panel state for one client.
type Conversation struct {
	ClientID string `json:"client_id" db:"client_id"`
	State    string `json:"state" db:"state"`
	Unread   bool   `json:"unread" db:"unread"`
}

// Conversation states.
const (
	ConversationClosed   = "closed"
	ConversationIdle     = "idle"
	ConversationAwaiting = "awaiting"
)

func (Conversation) TableName() string {
	return "conversations"
}

func (Conversation) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS conversations (
		client_id TEXT PRIMARY KEY,
		state TEXT NOT NULL DEFAULT 'closed',
		unread BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
