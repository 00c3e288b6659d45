package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"pharmacy-server/database"
	"pharmacy-server/models"
)

// ChatStore persists transcripts and conversation state. The SQL
// implementation below is the real one; tests use an in-memory fake.
type ChatStore interface {
	AppendMessage(m *models.ChatMessage) error
	Messages(clientID string) ([]models.ChatMessage, error)
	DeleteMessages(clientID string) error
	GetMessage(clientID, id string) (*models.ChatMessage, error)
	UpdateMessageText(clientID, id, text, originalText string) error
	GetConversation(clientID string) (models.Conversation, error)
	SaveConversation(c models.Conversation) error
}

// SQLChatStore stores transcripts in PostgreSQL. Concurrent writers are not
// coordinated beyond last-writer-wins on the conversation row.
type SQLChatStore struct{}

func NewSQLChatStore() *SQLChatStore {
	return &SQLChatStore{}
}

func (s *SQLChatStore) AppendMessage(m *models.ChatMessage) error {
	products, err := marshalNullable(m.Products, len(m.Products) > 0)
	if err != nil {
		return err
	}
	sources, err := marshalNullable(m.Sources, len(m.Sources) > 0)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO chat_messages (id, client_id, text, original_text, image, is_user, timestamp, products, sources)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)
	`
	_, err = database.Database.Exec(query, m.ID, m.ClientID, m.Text, m.OriginalText, m.Image, m.IsUser, m.Timestamp, products, sources)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (s *SQLChatStore) Messages(clientID string) ([]models.ChatMessage, error) {
	query := `
		SELECT id, text, original_text, image, is_user, timestamp, products, sources
		FROM chat_messages
		WHERE client_id = $1
		ORDER BY timestamp ASC, id ASC
	`
	rows, err := database.Database.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		m, err := scanMessage(rows, clientID)
		if err != nil {
			// A corrupt row is treated as absent data, never fatal.
			fmt.Printf("skipping unreadable chat message: %v\n", err)
			continue
		}
		messages = append(messages, *m)
	}
	return messages, nil
}

func (s *SQLChatStore) DeleteMessages(clientID string) error {
	_, err := database.Database.Exec(`DELETE FROM chat_messages WHERE client_id = $1`, clientID)
	return err
}

func (s *SQLChatStore) GetMessage(clientID, id string) (*models.ChatMessage, error) {
	row := database.Database.QueryRow(`
		SELECT id, text, original_text, image, is_user, timestamp, products, sources
		FROM chat_messages
		WHERE client_id = $1 AND id = $2
	`, clientID, id)
	return scanMessage(row, clientID)
}

func (s *SQLChatStore) UpdateMessageText(clientID, id, text, originalText string) error {
	query := `
		UPDATE chat_messages
		SET text = $3, original_text = NULLIF($4, '')
		WHERE client_id = $1 AND id = $2
	`
	_, err := database.Database.Exec(query, clientID, id, text, originalText)
	return err
}

func (s *SQLChatStore) GetConversation(clientID string) (models.Conversation, error) {
	conv := models.Conversation{ClientID: clientID, State: models.ConversationClosed}
	row := database.Database.QueryRow(`SELECT state, unread FROM conversations WHERE client_id = $1`, clientID)
	err := row.Scan(&conv.State, &conv.Unread)
	if err == sql.ErrNoRows {
		return conv, nil
	}
	if err != nil {
		return conv, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return conv, nil
}

func (s *SQLChatStore) SaveConversation(c models.Conversation) error {
	// Last writer wins; concurrent tabs are not coordinated.
	query := `
		INSERT INTO conversations (client_id, state, unread, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (client_id) DO UPDATE SET state = $2, unread = $3, updated_at = now()
	`
	_, err := database.Database.Exec(query, c.ClientID, c.State, c.Unread)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMessage(row rowScanner, clientID string) (*models.ChatMessage, error) {
	var m models.ChatMessage
	var originalText, image sql.NullString
	var products, sources []byte

	err := row.Scan(&m.ID, &m.Text, &originalText, &image, &m.IsUser, &m.Timestamp, &products, &sources)
	if err != nil {
		return nil, err
	}
	m.ClientID = clientID
	m.OriginalText = originalText.String
	m.Image = image.String
	if len(products) > 0 {
		if err := json.Unmarshal(products, &m.Products); err != nil {
			fmt.Printf("corrupt products payload on message %s: %v\n", m.ID, err)
		}
	}
	if len(sources) > 0 {
		if err := json.Unmarshal(sources, &m.Sources); err != nil {
			fmt.Printf("corrupt sources payload on message %s: %v\n", m.ID, err)
		}
	}
	return &m, nil
}

func marshalNullable(v interface{}, present bool) (interface{}, error) {
	if !present {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	// lib/pq sends []byte as bytea; JSONB columns want text.
	return string(data), nil
}
