package models

// ConversationWire covers both observed response shapes: the aggregate
// endpoint labels the mode "mode", the per-user endpoint "conversation_type".
type ConversationWire struct {
	UserID           string `json:"user_id"`
	Mode             string `json:"mode"`
	ConversationType string `json:"conversation_type"`
	Summary          string `json:"summary"`
	MessageCount     int    `json:"message_count"`
	CreatedAt        string `json:"created_at"`
}

type ConversationsResponse struct {
	Conversations []ConversationWire `json:"conversations"`
}

type Conversation struct {
	UserID       string
	Mode         string
	Summary      string
	MessageCount int
	CreatedAt    string
}

func (w ConversationWire) Normalize(ownerID string) Conversation {
	c := Conversation{
		UserID:       w.UserID,
		Mode:         w.Mode,
		Summary:      w.Summary,
		MessageCount: max(w.MessageCount, 0),
		CreatedAt:    w.CreatedAt,
	}
	if c.UserID == "" {
		c.UserID = ownerID
	}
	if c.Mode == "" {
		c.Mode = w.ConversationType
	}
	return c
}

func NormalizeConversations(wires []ConversationWire, ownerID string) []Conversation {
	convs := make([]Conversation, 0, len(wires))
	for _, w := range wires {
		convs = append(convs, w.Normalize(ownerID))
	}
	return convs
}
