package render

const tmplOverview = `
{{define "content"}}
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}{{with .Data}}
<div class="stats-grid">
<div class="stat-card"><div class="val">{{.Stats.TotalUsers}}</div><div class="lbl">總用戶數</div></div>
<div class="stat-card"><div class="val">{{.Stats.TotalConversations}}</div><div class="lbl">總對話數</div></div>
<div class="stat-card"><div class="val">{{.Stats.TotalScripts}}</div><div class="lbl">總腳本數</div></div>
<div class="stat-card"><div class="val">{{.Stats.TotalPositioning}}</div><div class="lbl">IP定位數</div></div>
</div>
<div class="charts-grid">
<div class="chart-card"><h3>用戶增長趨勢</h3><canvas data-chart-slot="user-growth"></canvas></div>
<div class="chart-card"><h3>模式使用分布</h3><canvas data-chart-slot="mode-distribution"></canvas></div>
</div>
<div class="chart-card">
<h3>最近活動</h3>
<div id="recent-activities">
{{if .ActivitiesFailed}}<div class="empty-state">載入活動失敗</div>
{{else if not .Activities}}<div class="empty-state">暫無活動記錄</div>
{{else}}{{range .Activities}}<div class="activity-item">
<div class="activity-icon">{{.Icon}}</div>
<div><strong>{{.Type}}</strong><p class="activity-meta">{{.Title}} - {{timeAgo .Time}}</p></div>
</div>{{end}}{{end}}
</div>
</div>
{{end}}{{end}}
{{end}}`

const tmplUsers = `
{{define "content"}}
<div class="section-actions">
<form method="GET" action="/export/users"><button class="btn btn-secondary btn-export" type="submit">📥 匯出 CSV</button></form>
<input class="filter-input" data-filter="[data-user-row]" placeholder="搜尋用戶..." type="text">
</div>
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}{{with .Data}}
{{if not .Users}}<div class="table-container"><div class="empty-state">暫無用戶記錄</div></div>
{{else if eq $.Layout "mobile"}}
<div class="mobile-cards-container">
{{range .Users}}<div class="mobile-card" data-user-row>
<div class="mobile-card-header">
<span class="mobile-card-title">{{orText "未命名用戶" .Name}}</span>
<span class="badge {{if .Subscribed}}badge-success{{else}}badge-danger{{end}}">{{if .Subscribed}}已訂閱{{else}}未訂閱{{end}}</span>
</div>
<div class="mobile-card-row"><span class="mobile-card-label">用戶ID</span><span class="mobile-card-value">{{truncate .ID 16}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">Email</span><span class="mobile-card-value">{{.Email}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">註冊時間</span><span class="mobile-card-value">{{fmtDate .CreatedAt}}</span></div>
<div class="mobile-card-actions">
<form method="POST" action="/actions/subscription" data-width>
<input type="hidden" name="user_id" value="{{.ID}}">
<input type="hidden" name="subscribe" value="{{negate .Subscribed}}">
<input type="hidden" name="w" value="">
<button class="btn-action {{if .Subscribed}}btn-danger{{else}}btn-success{{end}}" type="submit">{{if .Subscribed}}❌ 取消訂閱{{else}}✅ 啟用訂閱{{end}}</button>
</form>
<button class="btn-action btn-view" data-action="view-user" data-id="{{.ID}}" type="button">查看詳情</button>
</div>
</div>{{end}}
</div>
{{else}}
<div class="table-container">
<table>
<thead><tr><th>用戶ID</th><th>Email</th><th>名稱</th><th>訂閱狀態</th><th>註冊時間</th><th>對話數</th><th>腳本數</th><th>操作</th></tr></thead>
<tbody>
{{range .Users}}<tr data-user-row>
<td>{{truncate .ID 12}}</td>
<td>{{.Email}}</td>
<td>{{orDash .Name}}</td>
<td>{{if .Subscribed}}<span class="badge badge-success">已訂閱</span>{{else}}<span class="badge badge-danger">未訂閱</span>{{end}}</td>
<td>{{fmtDate .CreatedAt}}</td>
<td>{{.ConversationCount}}</td>
<td>{{.ScriptCount}}</td>
<td>
<form method="POST" action="/actions/subscription" data-width style="display:inline">
<input type="hidden" name="user_id" value="{{.ID}}">
<input type="hidden" name="subscribe" value="{{negate .Subscribed}}">
<input type="hidden" name="w" value="">
<button class="btn-action {{if .Subscribed}}btn-danger{{else}}btn-success{{end}}" type="submit">{{if .Subscribed}}❌ 取消訂閱{{else}}✅ 啟用訂閱{{end}}</button>
</form>
<button class="btn-action btn-view" data-action="view-user" data-id="{{.ID}}" type="button">查看</button>
</td>
</tr>{{end}}
</tbody>
</table>
</div>
{{end}}{{end}}{{end}}
{{end}}`

const tmplModes = `
{{define "content"}}
<div class="section-actions">
<form method="GET" action="/export/modes"><button class="btn btn-secondary btn-export" type="submit">📥 匯出 CSV</button></form>
</div>
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}{{with .Data}}
<div class="stats-grid">
<div class="stat-card"><div class="val">{{.Stats.QuickGenerateCount}}</div><div class="lbl">一鍵生成次數</div><div class="lbl">成功率 {{pct .Stats.SuccessRate}}</div></div>
<div class="stat-card"><div class="val">{{.Stats.AIConsultantCount}}</div><div class="lbl">AI顧問對話數</div><div class="lbl">平均輪數 {{turns .Stats.AvgTurns}}</div></div>
<div class="stat-card"><div class="val">{{.Stats.IPPlanningCount}}</div><div class="lbl">IP人設規劃次數</div><div class="lbl">人設檔案 {{.Stats.ProfilesGenerated}}</div></div>
</div>
<div class="chart-card"><h3>模式使用時間分布</h3><canvas data-chart-slot="mode-time"></canvas></div>
{{end}}{{end}}
{{end}}`

const tmplConversations = `
{{define "content"}}
<div class="section-actions">
<form method="GET" action="/export/conversations"><button class="btn btn-secondary btn-export" type="submit">📥 匯出 CSV</button></form>
<input class="filter-input" data-filter="[data-conv-row]" placeholder="搜尋對話..." type="text">
</div>
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}{{with .Data}}
{{if not .Conversations}}<div class="table-container"><div class="empty-state">暫無對話記錄</div></div>
{{else if eq $.Layout "mobile"}}
<div class="mobile-cards-container">
{{range .Conversations}}<div class="mobile-card" data-conv-row>
<div class="mobile-card-header">
<span class="mobile-card-title">{{.Mode}}</span>
<span class="mobile-card-badge">{{.MessageCount}} 條消息</span>
</div>
<div class="mobile-card-row"><span class="mobile-card-label">用戶ID</span><span class="mobile-card-value">{{truncate .UserID 16}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">對話摘要</span><span class="mobile-card-value">{{truncate .Summary 40}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">時間</span><span class="mobile-card-value">{{fmtDate .CreatedAt}}</span></div>
<div class="mobile-card-actions">
<button class="btn-action btn-view" data-action="view-conversation" data-id="{{.UserID}}" data-mode="{{.Mode}}" type="button">查看詳情</button>
</div>
</div>{{end}}
</div>
{{else}}
<div class="table-container">
<table>
<thead><tr><th>用戶ID</th><th>模式</th><th>摘要</th><th>消息數</th><th>時間</th><th>操作</th></tr></thead>
<tbody>
{{range .Conversations}}<tr data-conv-row>
<td>{{truncate .UserID 12}}</td>
<td>{{.Mode}}</td>
<td>{{truncate .Summary 30}}</td>
<td>{{.MessageCount}}</td>
<td>{{fmtDate .CreatedAt}}</td>
<td><button class="btn-action btn-view" data-action="view-conversation" data-id="{{.UserID}}" data-mode="{{.Mode}}" type="button">查看</button></td>
</tr>{{end}}
</tbody>
</table>
</div>
{{end}}{{end}}{{end}}
{{template "conversation-modal-shell" .}}
{{end}}`

const tmplScripts = `
{{define "content"}}
<div class="section-actions">
<form method="GET" action="/export/scripts"><button class="btn btn-secondary btn-export" type="submit">📥 匯出 CSV</button></form>
<input class="filter-input" data-filter="[data-script-row]" placeholder="搜尋腳本..." type="text">
</div>
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}{{with .Data}}
{{if not .Scripts}}<div class="table-container"><div class="empty-state">暫無腳本記錄</div></div>
{{else if eq $.Layout "mobile"}}
<div class="mobile-cards-container">
{{range .Scripts}}<div class="mobile-card" data-script-row>
<div class="mobile-card-header">
<span class="mobile-card-title">{{orText "未命名腳本" .Title}}</span>
<span class="mobile-card-badge">{{orText "未設定" .Platform}}</span>
</div>
<div class="mobile-card-row"><span class="mobile-card-label">用戶ID</span><span class="mobile-card-value">{{truncate .UserID 16}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">分類</span><span class="mobile-card-value">{{orText "未分類" .Category}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">時間</span><span class="mobile-card-value">{{fmtDate .CreatedAt}}</span></div>
<div class="mobile-card-actions">
<button class="btn-action btn-view" data-action="view-script" data-id="{{.ID}}" type="button">查看</button>
<form method="POST" action="/actions/scripts/delete" data-width onsubmit="return confirm('確定要刪除這個腳本嗎？')">
<input type="hidden" name="id" value="{{.ID}}">
<input type="hidden" name="w" value="">
<button class="btn-action btn-delete" type="submit">刪除</button>
</form>
</div>
</div>{{end}}
</div>
{{else}}
<div class="table-container">
<table>
<thead><tr><th>ID</th><th>用戶ID</th><th>標題</th><th>平台</th><th>分類</th><th>時間</th><th>操作</th></tr></thead>
<tbody>
{{range .Scripts}}<tr data-script-row>
<td>{{.ID}}</td>
<td>{{truncate .UserID 12}}</td>
<td>{{orText "未命名腳本" .Title}}</td>
<td>{{orText "未設定" .Platform}}</td>
<td>{{orText "未分類" .Category}}</td>
<td>{{fmtDate .CreatedAt}}</td>
<td>
<button class="btn-action btn-view" data-action="view-script" data-id="{{.ID}}" type="button">查看</button>
<form method="POST" action="/actions/scripts/delete" data-width style="display:inline" onsubmit="return confirm('確定要刪除這個腳本嗎？')">
<input type="hidden" name="id" value="{{.ID}}">
<input type="hidden" name="w" value="">
<button class="btn-action btn-delete" type="submit">刪除</button>
</form>
</td>
</tr>{{end}}
</tbody>
</table>
</div>
{{end}}{{end}}{{end}}
{{template "script-modal-shell" .}}
{{end}}`

const tmplGenerations = `
{{define "content"}}
<div class="section-actions">
<form method="GET" action="/export/generations"><button class="btn btn-secondary btn-export" type="submit">📥 匯出 CSV</button></form>
</div>
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}{{with .Data}}
{{if not .Generations}}<div class="table-container"><div class="empty-state">暫無生成記錄</div></div>
{{else if eq $.Layout "mobile"}}
<div class="mobile-cards-container">
{{range .Generations}}<div class="mobile-card">
<div class="mobile-card-header">
<span class="mobile-card-title">{{orText "生成記錄" .Type}}</span>
<span class="mobile-card-badge">{{.Platform}}</span>
</div>
<div class="mobile-card-row"><span class="mobile-card-label">生成ID</span><span class="mobile-card-value">{{.ID}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">用戶</span><span class="mobile-card-value">{{.UserName}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">主題</span><span class="mobile-card-value">{{.Topic}}</span></div>
<div class="mobile-card-row"><span class="mobile-card-label">時間</span><span class="mobile-card-value">{{fmtDate .CreatedAt}}</span></div>
</div>{{end}}
</div>
{{else}}
<div class="table-container">
<table>
<thead><tr><th>ID</th><th>用戶</th><th>平台</th><th>主題</th><th>類型</th><th>時間</th></tr></thead>
<tbody>
{{range .Generations}}<tr>
<td>{{.ID}}</td>
<td>{{.UserName}}</td>
<td>{{.Platform}}</td>
<td>{{.Topic}}</td>
<td>{{.Type}}</td>
<td>{{fmtDate .CreatedAt}}</td>
</tr>{{end}}
</tbody>
</table>
</div>
{{end}}{{end}}{{end}}
{{end}}`

const tmplAnalytics = `
{{define "content"}}
{{if .LoadFailed}}<div class="empty-state">載入失敗</div>{{else}}
<div class="charts-grid">
<div class="chart-card"><h3>平台使用分布</h3><canvas data-chart-slot="platform"></canvas></div>
<div class="chart-card"><h3>時間段使用分析</h3><canvas data-chart-slot="time-usage"></canvas></div>
<div class="chart-card"><h3>用戶活躍度</h3><canvas data-chart-slot="activity"></canvas></div>
<div class="chart-card"><h3>內容類型分布</h3><canvas data-chart-slot="content-type"></canvas></div>
</div>
{{end}}
{{end}}`

// Modal shells live in the page; their bodies are fetched from the fragment
// endpoints on demand.
const tmplModalShells = `
{{define "conversation-modal-shell"}}
<div class="modal" id="conversation-modal">
<div class="modal-content">
<button class="modal-close" data-action="close-modal" type="button">✕</button>
<h3>對話詳情</h3>
<div class="modal-body"></div>
</div>
</div>
{{end}}
{{define "script-modal-shell"}}
<div class="modal" id="script-modal">
<div class="modal-content">
<button class="modal-close" data-action="close-modal" type="button">✕</button>
<h3>腳本詳情</h3>
<div class="modal-body"></div>
</div>
</div>
{{end}}`
