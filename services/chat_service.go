package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/korbahq/korba-app/models"
	"github.com/korbahq/korba-app/utils"
)

const (
	// Greeting opens every conversation.
	Greeting = "Welcome to Korba! How can I assist you today?"
	// FallbackEmpty is sent when the endpoint answers without usable text.
	FallbackEmpty = "I'm sorry, I couldn't process that."
	// FallbackError is sent when the generation call fails for any reason.
	FallbackError = "Sorry, I'm having trouble connecting right now."
)

type conversation struct {
	mu      sync.Mutex
	id      string
	msgs    []models.ChatMessage
	pending bool
	closed  bool
}

// ChatService runs the concierge widget's conversations. Each conversation is
// an append-only transcript with at most one generation request in flight;
// sends arriving while one is pending are dropped, not queued.
type ChatService struct {
	mu            sync.RWMutex
	provider      ChatProvider
	conversations map[string]*conversation
	system        string
}

func NewChatService(provider ChatProvider, catalog []models.MenuItem) *ChatService {
	return &ChatService{
		provider:      provider,
		conversations: make(map[string]*conversation),
		system:        buildSystemInstruction(catalog),
	}
}

// buildSystemInstruction synthesizes the fixed concierge briefing from the
// menu catalog. Built once; the catalog is immutable after startup.
func buildSystemInstruction(catalog []models.MenuItem) string {
	var b strings.Builder
	b.WriteString(`You are the AI assistant for "Korba Restaurant".
Location: Noshahra Cantt.
About: Korba is a high-end restaurant blending traditional Pakistani flavors with modern culinary techniques.
Menu Highlights:
`)
	for _, item := range catalog {
		b.WriteString("- " + item.Name + ": " + item.Description + " (Price: " + utils.FormatRupees(item.Price) + ")\n")
	}
	b.WriteString(`
Contact Info:
- Phone: +1 (555) 123-4567
- Email: hello@korba-restaurant.com
- Address: 123 Culinary Lane, Noshahra Cantt.

Your tone should be professional, welcoming, and helpful.
Guide users on menu choices, location, and how to book a table.
If they ask about ordering, tell them they can add items to their cart on the Menu page and checkout anytime.
Keep responses concise and engaging.`)
	return b.String()
}

// Open starts a conversation seeded with the fixed greeting.
func (s *ChatService) Open() (string, []models.ChatMessage) {
	conv := &conversation{
		id:   uuid.NewString(),
		msgs: []models.ChatMessage{{Role: models.ChatRoleAssistant, Text: Greeting}},
	}

	s.mu.Lock()
	s.conversations[conv.id] = conv
	s.mu.Unlock()

	return conv.id, conv.snapshot()
}

// Transcript returns a copy of the conversation's messages.
func (s *ChatService) Transcript(id string) ([]models.ChatMessage, bool) {
	conv := s.lookup(id)
	if conv == nil {
		return nil, false
	}
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.snapshotLocked(), true
}

// Send appends the user message, runs exactly one generation attempt, and
// appends the assistant reply (or a fixed fallback on empty/failed results).
// Blank input or a send while a request is pending leaves the transcript
// untouched. Every accepted send grows the transcript by exactly two entries.
func (s *ChatService) Send(ctx context.Context, id, text string) ([]models.ChatMessage, bool) {
	conv := s.lookup(id)
	if conv == nil {
		return nil, false
	}

	text = strings.TrimSpace(text)

	conv.mu.Lock()
	if text == "" || conv.pending {
		out := conv.snapshotLocked()
		conv.mu.Unlock()
		return out, true
	}

	conv.msgs = append(conv.msgs, models.ChatMessage{Role: models.ChatRoleUser, Text: text})
	conv.pending = true
	request := s.buildRequest(conv.msgs)
	conv.mu.Unlock()

	reply, err := s.provider.Generate(ctx, request)

	conv.mu.Lock()
	defer conv.mu.Unlock()

	if conv.closed {
		// The widget was torn down mid-flight; drop the result.
		return conv.snapshotLocked(), true
	}

	switch {
	case err != nil:
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("chat generation failed: %v", err)
		}
		reply = FallbackError
	case strings.TrimSpace(reply) == "":
		reply = FallbackEmpty
	}

	conv.msgs = append(conv.msgs, models.ChatMessage{Role: models.ChatRoleAssistant, Text: reply})
	conv.pending = false
	return conv.snapshotLocked(), true
}

// Pending reports whether a generation request is in flight.
func (s *ChatService) Pending(id string) bool {
	conv := s.lookup(id)
	if conv == nil {
		return false
	}
	conv.mu.Lock()
	defer conv.mu.Unlock()
	return conv.pending
}

// Close tears a conversation down. A generation resolving after Close is
// discarded rather than applied.
func (s *ChatService) Close(id string) bool {
	s.mu.Lock()
	conv, ok := s.conversations[id]
	delete(s.conversations, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	conv.mu.Lock()
	conv.closed = true
	conv.mu.Unlock()
	return true
}

// buildRequest prefixes the system instruction to the full transcript. The
// transcript already ends with the newest user message.
func (s *ChatService) buildRequest(msgs []models.ChatMessage) []Message {
	request := make([]Message, 0, len(msgs)+1)
	request = append(request, Message{Role: roleSystem, Content: s.system})
	for _, m := range msgs {
		request = append(request, Message{Role: m.Role, Content: m.Text})
	}
	return request
}

func (s *ChatService) lookup(id string) *conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversations[id]
}

func (c *conversation) snapshot() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *conversation) snapshotLocked() []models.ChatMessage {
	out := make([]models.ChatMessage, len(c.msgs))
	copy(out, c.msgs)
	return out
}
