package sections

import (
	"admgate/internal/models"
	"context"
)

type ConversationsData struct {
	Conversations []models.Conversation
}

// LoadConversations uses the aggregate endpoint by default; the per-user
// fan-out variant is kept behind config for backends without it.
func (s *Service) LoadConversations(ctx context.Context) (*ConversationsData, error) {
	if s.conf.Upstream.FanOut {
		convs, err := fanOutUsers(ctx, s, func(ctx context.Context, userID string) ([]models.Conversation, error) {
			wires, err := s.api.UserConversations(ctx, userID)
			if err != nil {
				return nil, err
			}
			return models.NormalizeConversations(wires, userID), nil
		})
		if err != nil {
			return nil, err
		}
		return &ConversationsData{Conversations: convs}, nil
	}

	wires, err := s.api.Conversations(ctx)
	if err != nil {
		return nil, err
	}
	return &ConversationsData{Conversations: models.NormalizeConversations(wires, "")}, nil
}
