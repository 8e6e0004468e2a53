package sections

import (
	"admgate/internal/models"
	"context"
)

type GenerationsData struct {
	Generations []models.Generation
}

func (s *Service) LoadGenerations(ctx context.Context) (*GenerationsData, error) {
	gens, err := s.api.Generations(ctx)
	if err != nil {
		return nil, err
	}
	return &GenerationsData{Generations: gens}, nil
}
