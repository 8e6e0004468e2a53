package sections

import (
	"admgate/internal/models"
	"context"
)

type ScriptsData struct {
	Scripts []models.Script
}

func (s *Service) LoadScripts(ctx context.Context) (*ScriptsData, error) {
	var scripts []models.Script

	if s.conf.Upstream.FanOut {
		var err error
		scripts, err = fanOutUsers(ctx, s, func(ctx context.Context, userID string) ([]models.Script, error) {
			wires, err := s.api.UserScripts(ctx, userID)
			if err != nil {
				return nil, err
			}
			return models.NormalizeScripts(wires, userID), nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		wires, err := s.api.Scripts(ctx)
		if err != nil {
			return nil, err
		}
		scripts = models.NormalizeScripts(wires, "")
	}

	s.scriptsMu.Lock()
	s.scriptsByID = make(map[models.FlexID]models.Script, len(scripts))
	for _, sc := range scripts {
		s.scriptsByID[sc.ID] = sc
	}
	s.scriptsMu.Unlock()

	return &ScriptsData{Scripts: scripts}, nil
}

// ScriptByID resolves a script from the snapshot of the last loaded list.
func (s *Service) ScriptByID(id models.FlexID) (models.Script, bool) {
	s.scriptsMu.RLock()
	defer s.scriptsMu.RUnlock()
	sc, ok := s.scriptsByID[id]
	return sc, ok
}

func (s *Service) DeleteScript(ctx context.Context, id models.FlexID) error {
	return s.api.DeleteScript(ctx, id)
}
