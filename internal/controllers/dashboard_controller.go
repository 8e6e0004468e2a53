package controllers

import (
	"admgate/internal/models"
	"admgate/internal/providers"
	"admgate/internal/render"
	"admgate/internal/sections"
	"admgate/internal/upstream"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type DashboardController struct {
	logger   providers.Logger
	service  *sections.Service
	renderer *render.Renderer
}

func NewDashboardController(logger providers.Logger, service *sections.Service, renderer *render.Renderer) *DashboardController {
	return &DashboardController{
		logger:   logger,
		service:  service,
		renderer: renderer,
	}
}

var loadFailureToasts = map[sections.ID]string{
	sections.Overview:      "載入數據失敗",
	sections.Users:         "載入用戶數據失敗",
	sections.Modes:         "載入模式分析失敗",
	sections.Conversations: "載入對話記錄失敗",
	sections.Scripts:       "載入腳本失敗",
	sections.Generations:   "載入生成記錄失敗",
	sections.Analytics:     "載入分析數據失敗",
}

func viewportWidth(r *http.Request) int {
	w, err := strconv.Atoi(r.URL.Query().Get("w"))
	if err != nil {
		return 0
	}
	return w
}

// Root sends the landing request to the overview section.
func (dc *DashboardController) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/sections/overview", http.StatusFound)
}

// Section renders one dashboard section: exactly one active section per
// page view, layout picked from the reported viewport width.
func (dc *DashboardController) Section(w http.ResponseWriter, r *http.Request) {
	id, ok := sections.Parse(strings.TrimPrefix(r.URL.Path, "/sections/"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	width := viewportWidth(r)
	page := render.NewPage(id, sections.LayoutForWidth(width))
	page.Toast = r.URL.Query().Get("toast")
	page.ToastType = r.URL.Query().Get("toastType")
	if page.ToastType == "" {
		page.ToastType = "info"
	}

	ctx := r.Context()
	var loadErr error

	switch id {
	case sections.Overview:
		data, err := dc.service.LoadOverview(ctx)
		loadErr = err
		if err == nil {
			page.Data = data
			loadErr = page.SetCharts(data.Charts)
		}
	case sections.Users:
		data, err := dc.service.LoadUsers(ctx)
		loadErr = err
		page.Data = data
	case sections.Modes:
		data, err := dc.service.LoadModes(ctx)
		loadErr = err
		if err == nil {
			page.Data = data
			loadErr = page.SetCharts(data.Charts)
		}
	case sections.Conversations:
		data, err := dc.service.LoadConversations(ctx)
		loadErr = err
		page.Data = data
	case sections.Scripts:
		data, err := dc.service.LoadScripts(ctx)
		loadErr = err
		page.Data = data
	case sections.Generations:
		data, err := dc.service.LoadGenerations(ctx)
		loadErr = err
		page.Data = data
	case sections.Analytics:
		data, err := dc.service.LoadAnalytics(ctx)
		loadErr = err
		if err == nil {
			page.Data = data
			loadErr = page.SetCharts(data.Charts)
		}
	}

	if loadErr != nil {
		dc.logger.Errorf(providers.TypeUpstream, "section %s: %s", id, loadErr)
		page.Data = nil
		page.LoadFailed = true
		page.Toast = loadFailureToasts[id]
		page.ToastType = "error"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dc.renderer.Page(w, page); err != nil {
		dc.logger.Errorf(providers.TypeHttp, "render %s: %s", id, err)
	}
}

func redirectWithToast(w http.ResponseWriter, r *http.Request, section sections.ID, width int, toast, toastType string) {
	q := url.Values{}
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	q.Set("toast", toast)
	q.Set("toastType", toastType)
	http.Redirect(w, r, "/sections/"+string(section)+"?"+q.Encode(), http.StatusSeeOther)
}

// upstreamMessage surfaces the server-provided error text when there is one.
func upstreamMessage(err error, fallback string) string {
	var se *upstream.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// ToggleSubscription proxies the subscription flip and reconciles by
// redirecting into a full users reload.
func (dc *DashboardController) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	userID := r.PostForm.Get("user_id")
	if userID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	subscribe := r.PostForm.Get("subscribe") == "true"
	width, _ := strconv.Atoi(r.PostForm.Get("w"))

	if err := dc.service.ToggleSubscription(r.Context(), userID, subscribe); err != nil {
		dc.logger.Errorf(providers.TypeUpstream, "subscription toggle for %s: %s", userID, err)
		redirectWithToast(w, r, sections.Users, width, upstreamMessage(err, "修改訂閱狀態失敗"), "error")
		return
	}

	toast := "已取消訂閱"
	if subscribe {
		toast = "已啟用訂閱"
	}
	redirectWithToast(w, r, sections.Users, width, toast, "success")
}

// DeleteScript proxies the delete and reloads the scripts section.
func (dc *DashboardController) DeleteScript(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	id := models.FlexID(r.PostForm.Get("id"))
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	width, _ := strconv.Atoi(r.PostForm.Get("w"))

	if err := dc.service.DeleteScript(r.Context(), id); err != nil {
		dc.logger.Errorf(providers.TypeUpstream, "delete script %s: %s", id, err)
		redirectWithToast(w, r, sections.Scripts, width, upstreamMessage(err, "刪除腳本失敗"), "error")
		return
	}
	redirectWithToast(w, r, sections.Scripts, width, "腳本已刪除", "success")
}

// Export streams the upstream CSV blob as a file download named
// "<type>.csv". A failed export produces no download, only an error toast.
func (dc *DashboardController) Export(w http.ResponseWriter, r *http.Request) {
	exportType := strings.TrimPrefix(r.URL.Path, "/export/")
	if !sections.ValidExportType(exportType) {
		http.NotFound(w, r)
		return
	}

	blob, contentType, err := dc.service.Export(r.Context(), exportType)
	if err != nil {
		dc.logger.Errorf(providers.TypeUpstream, "export %s: %s", exportType, err)
		redirectWithToast(w, r, sections.ID(exportType), viewportWidth(r), "匯出 CSV 失敗", "error")
		return
	}

	if contentType == "" {
		contentType = "text/csv"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportType+`.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}

// ConversationFragment serves the detail modal body.
func (dc *DashboardController) ConversationFragment(w http.ResponseWriter, r *http.Request) {
	detail := dc.service.ConversationTranscript(r.URL.Query().Get("user_id"), r.URL.Query().Get("mode"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dc.renderer.Fragment(w, "conversation-fragment", detail); err != nil {
		dc.logger.Errorf(providers.TypeHttp, "conversation fragment: %s", err)
	}
}

// ScriptFragment resolves the script by id against the last loaded snapshot.
func (dc *DashboardController) ScriptFragment(w http.ResponseWriter, r *http.Request) {
	id := models.FlexID(r.URL.Query().Get("id"))
	script, ok := dc.service.ScriptByID(id)
	if !ok {
		http.Error(w, "找不到腳本", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dc.renderer.Fragment(w, "script-fragment", script); err != nil {
		dc.logger.Errorf(providers.TypeHttp, "script fragment: %s", err)
	}
}
