package sections

// ID names one of the seven dashboard sections.
type ID string

const (
	Overview      ID = "overview"
	Users         ID = "users"
	Modes         ID = "modes"
	Conversations ID = "conversations"
	Scripts       ID = "scripts"
	Generations   ID = "generations"
	Analytics     ID = "analytics"
)

// All lists the sections in nav order. Overview is the landing section.
var All = []ID{Overview, Users, Modes, Conversations, Scripts, Generations, Analytics}

// Titles is the static id→page-title lookup.
var Titles = map[ID]string{
	Overview:      "數據概覽",
	Users:         "用戶管理",
	Modes:         "模式分析",
	Conversations: "對話記錄",
	Scripts:       "腳本管理",
	Generations:   "生成記錄",
	Analytics:     "數據分析",
}

// Parse validates a section id from the request path.
func Parse(s string) (ID, bool) {
	id := ID(s)
	_, ok := Titles[id]
	return id, ok
}
