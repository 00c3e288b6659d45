package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"pharmacy-server/models"

	openai "github.com/sashabaranov/go-openai"
)

// WelcomeMessage seeds every fresh or cleared transcript.
const WelcomeMessage = "Hello! I'm Medi, your pharmacy assistant 😊 How can I help you today?"

// ApologyMessage is the fixed fallback for any failed provider call.
const ApologyMessage = "I'm sorry, something went wrong on my side. Please try again in a moment."

// OfflineMessage is returned without a network attempt when no provider
// credential is configured.
const OfflineMessage = "The assistant is currently offline. Our catalog and the rest of the store still work normally."

const personaPrompt = `You are Medi, the friendly AI assistant of HealthPlus Pharmacy, 14 MG Road, Bengaluru.
Store facts: open every day 8am-10pm, free home delivery within 5 km, phone +91 80 4466 1234.
Tone: warm, concise and reassuring. Use **bold** for medicine names and short paragraphs.
If the user greets you, reply with one short friendly sentence only.
When the user wants to find, buy or compare medicines, call the search_medicines function instead of answering from memory.
Always end medical answers with: "Please consult a doctor or pharmacist before taking any medicine."
Never diagnose conditions or prescribe dosages beyond the printed label.`

// ErrRequestInFlight rejects a second send while one is outstanding for the
// same conversation.
var ErrRequestInFlight = fmt.Errorf("a chat request is already in flight for this conversation")

var searchMedicinesTool = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        "search_medicines",
		Description: "Search the pharmacy's medicine range by name, symptom or category.",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "What the customer is looking for, e.g. 'cough syrup'"}
			},
			"required": ["query"]
		}`),
	},
}

// TextTranslator re-renders text in another language.
type TextTranslator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// ChatService orchestrates assistant conversations: transcript persistence,
// the open/idle/awaiting state machine, tool-call execution and translation
// bookkeeping.
type ChatService struct {
	llm        ChatCompleter
	model      string
	search     *SearchEngine
	store      ChatStore
	translator TextTranslator

	mu       sync.Mutex
	inflight map[string]bool
	seedMu   sync.Mutex
}

func NewChatService(llm ChatCompleter, model string, search *SearchEngine, store ChatStore, translator TextTranslator) *ChatService {
	return &ChatService{
		llm:        llm,
		model:      model,
		search:     search,
		store:      store,
		translator: translator,
		inflight:   map[string]bool{},
	}
}

// SubscribeAskEvents wires the service to the ask-assistant bus topic so
// other parts of the system can open the chat and pre-submit a question.
func (s *ChatService) SubscribeAskEvents() error {
	return Bus.SubscribeAsync(TopicAskAssistant, s.handleAskEvent, false)
}

func (s *ChatService) handleAskEvent(ev AskAssistantEvent) {
	conv, err := s.store.GetConversation(ev.ClientID)
	if err != nil {
		fmt.Printf("ask-assistant state read failed for %s: %v\n", ev.ClientID, err)
	}
	// A panel closed at publish time is not force-opened; the reply lands
	// with the unread flag set instead.
	if err == nil && conv.State != models.ConversationClosed {
		if _, err := s.Open(ev.ClientID); err != nil {
			fmt.Printf("ask-assistant open failed for %s: %v\n", ev.ClientID, err)
		}
	}
	if _, err := s.SendTurn(context.Background(), ev.ClientID, ev.Question(), ""); err != nil {
		fmt.Printf("ask-assistant turn failed for %s: %v\n", ev.ClientID, err)
	}
}

// Open moves the conversation to idle and clears the unread flag.
func (s *ChatService) Open(clientID string) (models.Conversation, error) {
	conv := models.Conversation{ClientID: clientID, State: models.ConversationIdle, Unread: false}
	if err := s.store.SaveConversation(conv); err != nil {
		return conv, err
	}
	if _, err := s.History(clientID); err != nil {
		return conv, err
	}
	return conv, nil
}

// Close moves the conversation to closed from any state.
func (s *ChatService) Close(clientID string) (models.Conversation, error) {
	conv, err := s.store.GetConversation(clientID)
	if err != nil {
		return conv, err
	}
	conv.State = models.ConversationClosed
	return conv, s.store.SaveConversation(conv)
}

// Conversation returns the current panel state.
func (s *ChatService) Conversation(clientID string) (models.Conversation, error) {
	return s.store.GetConversation(clientID)
}

// History returns the transcript, seeding the welcome message on first use.
// The seed check-and-insert is serialized so two concurrent first reads
// cannot each plant a welcome row.
func (s *ChatService) History(clientID string) ([]models.ChatMessage, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	messages, err := s.store.Messages(clientID)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		welcome := s.newAssistantMessage(clientID, WelcomeMessage)
		if err := s.store.AppendMessage(&welcome); err != nil {
			return nil, err
		}
		messages = []models.ChatMessage{welcome}
	}
	return messages, nil
}

// Clear resets the transcript to the single seeded welcome message.
func (s *ChatService) Clear(clientID string) (models.ChatMessage, error) {
	if err := s.store.DeleteMessages(clientID); err != nil {
		return models.ChatMessage{}, err
	}
	welcome := s.newAssistantMessage(clientID, WelcomeMessage)
	if err := s.store.AppendMessage(&welcome); err != nil {
		return models.ChatMessage{}, err
	}
	return welcome, nil
}

// SendTurn submits one user turn and returns the assistant reply. Provider
// failures never escape: they surface as a normal assistant message carrying
// the fixed apology, so the state machine always returns to idle.
func (s *ChatService) SendTurn(ctx context.Context, clientID, text, imageDataURI string) (*models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" && imageDataURI == "" {
		return nil, fmt.Errorf("message text is required")
	}
	if !s.begin(clientID) {
		return nil, ErrRequestInFlight
	}
	defer s.end(clientID)

	conv, err := s.store.GetConversation(clientID)
	if err != nil {
		return nil, err
	}
	wasClosed := conv.State == models.ConversationClosed

	history, err := s.History(clientID)
	if err != nil {
		return nil, err
	}

	userMsg := models.ChatMessage{
		ID:        newMessageID(),
		ClientID:  clientID,
		Text:      text,
		Image:     imageDataURI,
		IsUser:    true,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.store.AppendMessage(&userMsg); err != nil {
		return nil, err
	}

	conv.State = models.ConversationAwaiting
	if err := s.store.SaveConversation(conv); err != nil {
		fmt.Printf("failed to persist awaiting state for %s: %v\n", clientID, err)
	}

	reply := s.respond(ctx, clientID, history, text, imageDataURI)
	if err := s.store.AppendMessage(&reply); err != nil {
		return nil, err
	}

	// Re-read state: a close during the request must stick, with the reply
	// marked unread.
	current, err := s.store.GetConversation(clientID)
	if err != nil {
		current = conv
	}
	closedNow := current.State == models.ConversationClosed
	if closedNow {
		current.State = models.ConversationClosed
	} else {
		current.State = models.ConversationIdle
	}
	current.Unread = wasClosed || closedNow
	if err := s.store.SaveConversation(current); err != nil {
		fmt.Printf("failed to persist idle state for %s: %v\n", clientID, err)
	}

	return &reply, nil
}

func (s *ChatService) respond(ctx context.Context, clientID string, history []models.ChatMessage, text, imageDataURI string) models.ChatMessage {
	reply := s.newAssistantMessage(clientID, "")

	if s.llm == nil {
		reply.Text = OfflineMessage
		return reply
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: personaPrompt},
	}
	// Recent turns only; the transcript itself is unbounded.
	tail := history
	if len(tail) > 10 {
		tail = tail[len(tail)-10:]
	}
	for _, m := range tail {
		role := openai.ChatMessageRoleAssistant
		if m.IsUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}

	turn := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if imageDataURI != "" {
		turn.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: text},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: imageDataURI}},
		}
	} else {
		turn.Content = text
	}
	messages = append(messages, turn)

	resp, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
		Tools:    []openai.Tool{searchMedicinesTool},
	})
	if err != nil || len(resp.Choices) == 0 {
		fmt.Printf("chat completion failed for %s: %v\n", clientID, err)
		reply.Text = ApologyMessage
		return reply
	}

	choice := resp.Choices[0].Message

	for _, call := range choice.ToolCalls {
		if call.Function.Name != "search_medicines" {
			continue
		}
		var args struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil || strings.TrimSpace(args.Query) == "" {
			fmt.Printf("bad search_medicines arguments for %s: %v\n", clientID, err)
			reply.Text = ApologyMessage
			return reply
		}

		// The search runs locally; the model only ever sees this textual
		// wrapper, never the product records themselves.
		products := s.search.Search(ctx, args.Query, ChatSearchLimit)
		if len(products) > 0 {
			reply.Text = fmt.Sprintf("Here's what I found for **%s**: %d option(s) from our range. Please consult a doctor or pharmacist before taking any medicine.", args.Query, len(products))
			reply.Products = products
		} else {
			reply.Text = fmt.Sprintf("I couldn't find anything matching \"%s\" right now. Could you try a different name or describe the symptom?", args.Query)
		}
		return reply
	}

	if strings.TrimSpace(choice.Content) == "" {
		reply.Text = ApologyMessage
		return reply
	}
	reply.Text = choice.Content
	reply.Sources = extractSources(choice)
	return reply
}

// TranslateMessage swaps a message's text for a translated variant, keeping
// the verbatim original so the swap is reversible offline. On translation
// failure the stored message is returned unchanged along with the error.
func (s *ChatService) TranslateMessage(ctx context.Context, clientID, messageID, targetLanguage string) (*models.ChatMessage, error) {
	m, err := s.store.GetMessage(clientID, messageID)
	if err != nil {
		return nil, err
	}
	if s.translator == nil {
		return m, ErrAIOffline
	}

	translated, err := s.translator.Translate(ctx, m.Text, targetLanguage)
	if err != nil {
		return m, err
	}

	original := m.OriginalText
	if original == "" {
		original = m.Text
	}
	if err := s.store.UpdateMessageText(clientID, messageID, translated, original); err != nil {
		return m, err
	}
	m.Text = translated
	m.OriginalText = original
	return m, nil
}

// RevertMessage restores the pre-translation text exactly, no network call.
func (s *ChatService) RevertMessage(clientID, messageID string) (*models.ChatMessage, error) {
	m, err := s.store.GetMessage(clientID, messageID)
	if err != nil {
		return nil, err
	}
	if m.OriginalText == "" {
		return m, nil
	}
	if err := s.store.UpdateMessageText(clientID, messageID, m.OriginalText, ""); err != nil {
		return m, err
	}
	m.Text = m.OriginalText
	m.OriginalText = ""
	return m, nil
}

func (s *ChatService) begin(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[clientID] {
		return false
	}
	s.inflight[clientID] = true
	return true
}

func (s *ChatService) end(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, clientID)
}

func (s *ChatService) newAssistantMessage(clientID, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        newMessageID(),
		ClientID:  clientID,
		Text:      text,
		IsUser:    false,
		Timestamp: time.Now().UnixMilli(),
	}
}

func newMessageID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// extractSources pulls web citations off an assistant reply. Providers
// attach them to the message as url_citation annotations.
func extractSources(msg openai.ChatCompletionMessage) []models.GroundingSource {
	var sources []models.GroundingSource
	for _, a := range msg.Annotations {
		if a.Type != openai.AnnotationTypeURLCitation || a.URLCitation == nil {
			continue
		}
		if a.URLCitation.URL == "" {
			continue
		}
		title := a.URLCitation.Title
		if title == "" {
			title = a.URLCitation.URL
		}
		sources = append(sources, models.GroundingSource{Title: title, URL: a.URLCitation.URL})
	}
	return sources
}
