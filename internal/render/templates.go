package render

// Base layout: nav sidebar, header with page title and live clock, toast
// area, chart bootstrap and the delegated action handlers. Record ids only
// ever travel through data attributes and form values.
const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="zh-TW">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}} - 管理後台</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"></script>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'PingFang TC','Microsoft JhengHei',sans-serif;background:#f1f5f9;color:#1e293b;font-size:14px}
a{color:#3b82f6;text-decoration:none}
.layout{display:flex;min-height:100vh}
.sidebar{width:220px;background:#1e293b;color:#cbd5e1;padding:16px 0;flex-shrink:0}
.sidebar .brand{color:#fff;font-weight:700;font-size:16px;padding:0 20px 16px}
.nav-item{display:block;padding:10px 20px;color:#94a3b8}
.nav-item:hover{background:#334155;color:#e2e8f0}
.nav-item.active{background:#3b82f6;color:#fff}
main{flex:1;padding:20px}
.page-header{display:flex;justify-content:space-between;align-items:center;margin-bottom:16px}
h1{font-size:20px}
#current-time{color:#64748b;font-size:13px}
.section-actions{display:flex;gap:8px;margin-bottom:12px}
.btn{padding:8px 14px;border:none;border-radius:6px;cursor:pointer;font-size:13px;background:#3b82f6;color:#fff}
.btn-secondary{background:#64748b}
.btn-action{padding:4px 10px;border:none;border-radius:4px;cursor:pointer;font-size:12px;margin-right:4px}
.btn-view{background:#e2e8f0;color:#1e293b}
.btn-danger{background:#ef4444;color:#fff}
.btn-success{background:#10b981;color:#fff}
.btn-delete{background:#ef4444;color:#fff}
.stats-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(180px,1fr));gap:12px;margin-bottom:16px}
.stat-card{background:#fff;border-radius:8px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.stat-card .val{font-size:26px;font-weight:700}
.stat-card .lbl{color:#64748b;font-size:12px;margin-top:4px}
.charts-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(320px,1fr));gap:12px;margin-bottom:16px}
.chart-card{background:#fff;border-radius:8px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.chart-card h3{font-size:14px;margin-bottom:8px}
.table-container{background:#fff;border-radius:8px;overflow-x:auto;box-shadow:0 1px 3px rgba(0,0,0,.08)}
table{width:100%;border-collapse:collapse}
th{text-align:left;padding:10px 12px;border-bottom:2px solid #e2e8f0;color:#64748b;font-size:12px}
td{padding:8px 12px;border-bottom:1px solid #f1f5f9}
.badge{display:inline-block;padding:2px 8px;border-radius:10px;font-size:12px}
.badge-success{background:#d1fae5;color:#065f46}
.badge-danger{background:#fee2e2;color:#991b1b}
.mobile-cards-container{display:flex;flex-direction:column;gap:10px;padding:10px}
.mobile-card{background:#fff;border-radius:8px;padding:12px;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.mobile-card-header{display:flex;justify-content:space-between;margin-bottom:8px}
.mobile-card-title{font-weight:600}
.mobile-card-badge{font-size:12px;color:#64748b}
.mobile-card-row{display:flex;justify-content:space-between;padding:3px 0;font-size:13px}
.mobile-card-label{color:#64748b}
.mobile-card-actions{margin-top:8px;display:flex;gap:6px}
.empty-state{text-align:center;padding:2rem;color:#64748b}
.activity-item{display:flex;gap:10px;padding:8px 0;border-bottom:1px solid #f1f5f9}
.activity-icon{font-size:18px}
.activity-meta{margin:0;font-size:.875rem;color:#64748b}
.toast{position:fixed;top:20px;right:20px;padding:1rem 1.5rem;color:#fff;border-radius:.5rem;box-shadow:0 4px 12px rgba(0,0,0,.15);z-index:9999}
.toast-success{background:#10b981}
.toast-error{background:#ef4444}
.toast-info{background:#3b82f6}
.modal{display:none;position:fixed;inset:0;background:rgba(0,0,0,.5);z-index:100;align-items:center;justify-content:center}
.modal.active{display:flex}
.modal-content{background:#fff;border-radius:8px;max-width:640px;width:92%;max-height:80vh;overflow-y:auto;padding:20px}
.modal-close{float:right;cursor:pointer;border:none;background:none;font-size:18px}
.filter-input{padding:6px 10px;border:1px solid #e2e8f0;border-radius:6px;font-size:13px}
.message-item{margin-bottom:10px;padding:10px;border-radius:8px;background:#f8fafc}
.message-item.ai{background:#eff6ff}
.message-header{display:flex;justify-content:space-between;font-size:12px;color:#64748b;margin-bottom:4px}
.message-content{white-space:pre-wrap}
.script-info{display:grid;grid-template-columns:1fr 1fr;gap:8px;margin-bottom:12px}
.script-info-label{color:#64748b;font-size:12px;display:block}
.script-text{white-space:pre-wrap;background:#f8fafc;padding:12px;border-radius:8px}
</style>
</head>
<body data-layout="{{.Layout}}">
<div class="layout">
<aside class="sidebar">
<div class="brand">短影音管理後台</div>
{{range .Nav}}<a class="nav-item{{if .Active}} active{{end}}" data-nav href="/sections/{{.ID}}">{{.Title}}</a>
{{end}}</aside>
<main>
<div class="page-header">
<h1 id="page-title">{{.Title}}</h1>
<div><span id="current-time"></span> <button class="btn btn-secondary" data-action="refresh" type="button">🔄 重新整理</button></div>
</div>
{{template "content" .}}
</main>
</div>
{{if .Toast}}<div class="toast toast-{{.ToastType}}" id="toast">{{.Toast}}</div>{{end}}
{{if .ChartsJSON}}<script id="chart-data" type="application/json">{{.ChartsJSON}}</script>{{end}}
<script>
(function(){
	function tick(){
		document.getElementById('current-time').textContent = new Date().toLocaleString('zh-TW',
			{year:'numeric',month:'2-digit',day:'2-digit',hour:'2-digit',minute:'2-digit',second:'2-digit'});
	}
	tick();
	setInterval(tick, 1000);

	// Re-request the active section when a resize crosses the layout
	// threshold, after the debounce window.
	var resizeTimer;
	window.addEventListener('resize', function(){
		clearTimeout(resizeTimer);
		resizeTimer = setTimeout(function(){
			var mobile = window.innerWidth <= 768;
			var current = document.body.dataset.layout === 'mobile';
			if (mobile !== current) location.replace(withWidth(location.href));
		}, 300);
	});

	// A direct visit carries no width hint and renders desktop; reconcile
	// once on load so phones get the card layout without a resize.
	(function(){
		var mobile = window.innerWidth <= 768;
		var current = document.body.dataset.layout === 'mobile';
		if (mobile !== current) location.replace(withWidth(location.href));
	})();

	function withWidth(href){
		var u = new URL(href, location.origin);
		u.searchParams.set('w', window.innerWidth);
		u.searchParams.delete('toast');
		u.searchParams.delete('toastType');
		return u;
	}

	document.querySelectorAll('a[data-nav]').forEach(function(a){
		a.addEventListener('click', function(e){
			e.preventDefault();
			location.href = withWidth(a.href);
		});
	});

	document.querySelectorAll('form[data-width]').forEach(function(f){
		f.addEventListener('submit', function(){
			f.querySelector('input[name=w]').value = window.innerWidth;
		});
	});

	var toast = document.getElementById('toast');
	if (toast) setTimeout(function(){ toast.remove(); }, 3000);

	var chartData = document.getElementById('chart-data');
	if (chartData && window.Chart) {
		var configs = JSON.parse(chartData.textContent);
		Object.keys(configs).forEach(function(slot){
			var canvas = document.querySelector('canvas[data-chart-slot="' + slot + '"]');
			if (canvas) new Chart(canvas, configs[slot]);
		});
	}

	function openModal(id, url){
		var m = document.getElementById(id);
		if (!m) return;
		m.classList.add('active');
		var body = m.querySelector('.modal-body');
		body.innerHTML = '<p>載入中...</p>';
		fetch(url).then(function(r){
			if (!r.ok) throw new Error(r.status);
			return r.text();
		}).then(function(html){
			body.innerHTML = html;
		}).catch(function(){
			body.innerHTML = '<p class="empty-state">載入失敗</p>';
		});
	}

	document.addEventListener('click', function(e){
		var el = e.target.closest('[data-action]');
		if (!el) return;
		switch (el.dataset.action) {
		case 'view-conversation':
			openModal('conversation-modal', '/fragments/conversation?user_id='
				+ encodeURIComponent(el.dataset.id) + '&mode=' + encodeURIComponent(el.dataset.mode));
			break;
		case 'view-script':
			openModal('script-modal', '/fragments/script?id=' + encodeURIComponent(el.dataset.id));
			break;
		case 'view-user':
			alert('查看用戶詳情\n用戶ID: ' + el.dataset.id);
			break;
		case 'close-modal':
			el.closest('.modal').classList.remove('active');
			break;
		case 'refresh':
			var u = withWidth(location.href);
			u.searchParams.set('toast', '數據已重新整理');
			u.searchParams.set('toastType', 'success');
			location.href = u;
			break;
		}
	});

	document.querySelectorAll('input[data-filter]').forEach(function(input){
		input.addEventListener('input', function(){
			var needle = input.value.toLowerCase();
			document.querySelectorAll(input.dataset.filter).forEach(function(row){
				row.style.display = row.textContent.toLowerCase().includes(needle) ? '' : 'none';
			});
		});
	});
})();
</script>
</body>
</html>{{end}}`
