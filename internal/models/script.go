package models

// ScriptWire mirrors /admin/scripts and /scripts/my elements. The backend is
// inconsistent about title/name, category/topic and created_at/createdAt;
// both spellings are decoded and collapsed in Normalize.
type ScriptWire struct {
	ID           FlexID `json:"id"`
	UserID       string `json:"user_id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	Platform     string `json:"platform"`
	Category     string `json:"category"`
	Topic        string `json:"topic"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	CreatedAtAlt string `json:"createdAt"`
}

type ScriptsResponse struct {
	Scripts []ScriptWire `json:"scripts"`
}

type Script struct {
	ID        FlexID
	UserID    string
	Title     string
	Platform  string
	Category  string
	Content   string
	CreatedAt string
}

func (w ScriptWire) Normalize(ownerID string) Script {
	s := Script{
		ID:        w.ID,
		UserID:    w.UserID,
		Title:     w.Title,
		Platform:  w.Platform,
		Category:  w.Category,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
	}
	if s.UserID == "" {
		s.UserID = ownerID
	}
	if s.Title == "" {
		s.Title = w.Name
	}
	if s.Category == "" {
		s.Category = w.Topic
	}
	if s.CreatedAt == "" {
		s.CreatedAt = w.CreatedAtAlt
	}
	return s
}

func NormalizeScripts(wires []ScriptWire, ownerID string) []Script {
	scripts := make([]Script, 0, len(wires))
	for _, w := range wires {
		scripts = append(scripts, w.Normalize(ownerID))
	}
	return scripts
}
