package sections

type ConversationMessage struct {
	Role    string
	Content string
	Time    string
}

type ConversationDetail struct {
	UserID   string
	Mode     string
	Messages []ConversationMessage
}

// ConversationTranscript serves the placeholder transcript until the backend
// grows a per-conversation detail endpoint.
func (s *Service) ConversationTranscript(userID, mode string) ConversationDetail {
	return ConversationDetail{
		UserID: userID,
		Mode:   mode,
		Messages: []ConversationMessage{
			{Role: "user", Content: "我想要開始做短影音，應該怎麼開始？", Time: "2025-01-10 10:30:00"},
			{Role: "ai", Content: "很高興為您服務！開始做短影音之前，我需要了解幾個問題：\n1. 您想在哪個平台發布？（抖音、小紅書、Instagram等）\n2. 您的目標受眾是誰？\n3. 您想創作什麼類型的內容？（美食、旅遊、教育等）", Time: "2025-01-10 10:30:15"},
			{Role: "user", Content: "我想在抖音上做美食類的短影音，目標受眾是年輕女性。", Time: "2025-01-10 10:31:00"},
			{Role: "ai", Content: "很棒的方向！針對抖音美食內容，我建議：\n\n🎯 帳號定位：年輕女性的美食探索日記\n📝 內容方向：\n- 快速美食製作（3-5分鐘內）\n- 網紅美食探店\n- 在家就能做的餐廳級料理\n\n🔥 熱門標籤：#美食日常 #在家做飯 #美食探店", Time: "2025-01-10 10:31:30"},
		},
	}
}
