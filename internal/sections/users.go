package sections

import (
	"admgate/internal/models"
	"context"
)

type UsersData struct {
	Users []models.User
}

func (s *Service) LoadUsers(ctx context.Context) (*UsersData, error) {
	wires, err := s.api.Users(ctx)
	if err != nil {
		return nil, err
	}
	return &UsersData{Users: models.NormalizeUsers(wires)}, nil
}

// ToggleSubscription flips a user's subscription. The authoritative state is
// re-read by the caller through a full users reload after success.
func (s *Service) ToggleSubscription(ctx context.Context, userID string, subscribed bool) error {
	return s.api.SetSubscription(ctx, userID, subscribed)
}
