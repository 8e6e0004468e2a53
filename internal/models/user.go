package models

// UserWire mirrors one element of the /admin/users response.
type UserWire struct {
	UserID            string `json:"user_id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	IsSubscribed      *bool  `json:"is_subscribed"`
	CreatedAt         string `json:"created_at"`
	ConversationCount int    `json:"conversation_count"`
	ScriptCount       int    `json:"script_count"`
}

type UsersResponse struct {
	Users []UserWire `json:"users"`
}

type User struct {
	ID                string
	Email             string
	Name              string
	Subscribed        bool
	CreatedAt         string
	ConversationCount int
	ScriptCount       int
}

// Normalize applies the backend's implicit defaults: a user with no
// is_subscribed field counts as subscribed, counts never go negative.
func (w UserWire) Normalize() User {
	u := User{
		ID:                w.UserID,
		Email:             w.Email,
		Name:              w.Name,
		Subscribed:        w.IsSubscribed == nil || *w.IsSubscribed,
		CreatedAt:         w.CreatedAt,
		ConversationCount: max(w.ConversationCount, 0),
		ScriptCount:       max(w.ScriptCount, 0),
	}
	return u
}

func NormalizeUsers(wires []UserWire) []User {
	users := make([]User, 0, len(wires))
	for _, w := range wires {
		users = append(users, w.Normalize())
	}
	return users
}
