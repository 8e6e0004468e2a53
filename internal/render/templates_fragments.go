package render

// Conversation detail still serves the canned transcript the original
// shipped; the fragment endpoint is the seam where a real upstream detail
// call slots in.
const tmplConversationFragment = `
{{define "conversation-fragment"}}<div class="conversation-detail">
{{range .Messages}}<div class="message-item {{.Role}}">
<div class="message-header">
<span class="message-role">{{if eq .Role "user"}}👤 用戶{{else}}🤖 AI助理{{end}}</span>
<span class="message-time">{{.Time}}</span>
</div>
<div class="message-content">{{.Content}}</div>
</div>{{end}}
</div>{{end}}`

const tmplScriptFragment = `
{{define "script-fragment"}}<div class="script-detail">
<div class="script-info">
<div class="script-info-item"><span class="script-info-label">腳本標題</span><span class="script-info-value">{{orText "未命名腳本" .Title}}</span></div>
<div class="script-info-item"><span class="script-info-label">平台</span><span class="script-info-value">{{orText "未設定" .Platform}}</span></div>
<div class="script-info-item"><span class="script-info-label">分類</span><span class="script-info-value">{{orText "未分類" .Category}}</span></div>
<div class="script-info-item"><span class="script-info-label">創建時間</span><span class="script-info-value">{{fmtDate .CreatedAt}}</span></div>
</div>
<div class="script-content">
<h4>📝 腳本內容</h4>
<div class="script-text">{{orText "無內容" .Content}}</div>
</div>
</div>{{end}}`
