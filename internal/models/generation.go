package models

type GenerationWire struct {
	ID        FlexID `json:"id"`
	UserName  string `json:"user_name"`
	Platform  string `json:"platform"`
	Topic     string `json:"topic"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

type GenerationsResponse struct {
	Generations []GenerationWire `json:"generations"`
}

// Generation records are read-only, the wire shape is already canonical.
type Generation = GenerationWire
