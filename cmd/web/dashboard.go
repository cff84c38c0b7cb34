package web

import (
	"fmt"
	"net/http"
)

func DashboardHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Frontline Ops Dashboard</title>
  <style>
    :root {
      --bg: #f4f6f8;
      --surface: #ffffff;
      --text: #17212b;
      --muted: #5c6b79;
      --line: #d9e0e7;
      --accent: #0b7285;
      --accent-soft: #d3f2f7;
      --warn: #e67700;
      --danger: #c92a2a;
      --ok: #2f9e44;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Helvetica, Arial, sans-serif;
      background: linear-gradient(160deg, #f9fbfc 0%, #eef4f8 100%);
      color: var(--text);
    }
    .container {
      max-width: 1200px;
      margin: 0 auto;
      padding: 16px;
    }
    .header {
      margin-bottom: 16px;
      padding: 16px;
      background: var(--surface);
      border: 1px solid var(--line);
      border-radius: 12px;
    }
    .header h1 { margin: 0 0 6px 0; font-size: 24px; }
    .header p { margin: 0; color: var(--muted); }
    .grid {
      display: grid;
      gap: 12px;
      grid-template-columns: 1fr;
    }
    .panel {
      background: var(--surface);
      border: 1px solid var(--line);
      border-radius: 12px;
      padding: 14px;
    }
    .filters {
      display: grid;
      gap: 10px;
      grid-template-columns: repeat(2, 1fr);
    }
    .filters .full { grid-column: span 2; }
    label { display: block; font-size: 12px; color: var(--muted); margin-bottom: 4px; }
    select, input, button {
      width: 100%;
      padding: 10px;
      border: 1px solid var(--line);
      border-radius: 8px;
      font-size: 14px;
      background: #fff;
    }
    button {
      background: var(--accent);
      color: #fff;
      border: 0;
      cursor: pointer;
      font-weight: 600;
    }
    .stats {
      display: grid;
      gap: 10px;
      grid-template-columns: repeat(2, 1fr);
    }
    .stat {
      border: 1px solid var(--line);
      border-radius: 10px;
      padding: 10px;
      background: #fbfdff;
    }
    .stat .label { color: var(--muted); font-size: 12px; }
    .stat .value { font-size: 22px; font-weight: 700; }
    .demand-list { display: grid; gap: 8px; }
    .demand-item {
      display: flex;
      justify-content: space-between;
      border: 1px solid var(--line);
      border-radius: 8px;
      padding: 8px 10px;
      background: #fbfdff;
    }
    .timeline { display: grid; gap: 8px; }
    .timeline-item {
      border: 1px solid var(--line);
      border-left: 4px solid var(--accent);
      border-radius: 8px;
      padding: 10px;
      background: #fff;
    }
    .timeline-item.priority-high { border-left-color: var(--danger); }
    .timeline-item.priority-medium { border-left-color: var(--warn); }
    .meta {
      display: flex;
      flex-wrap: wrap;
      gap: 8px;
      margin-top: 6px;
      color: var(--muted);
      font-size: 12px;
    }
    .priority-high { color: var(--danger); font-weight: 700; }
    .priority-medium { color: var(--warn); font-weight: 700; }
    .priority-low { color: var(--ok); font-weight: 700; }
    @media (min-width: 900px) {
      .grid { grid-template-columns: 1.1fr 1fr; }
      .filters { grid-template-columns: repeat(4, 1fr); }
      .filters .full { grid-column: span 1; }
      .stats { grid-template-columns: repeat(4, 1fr); }
    }
  </style>
</head>
<body>
  <div class="container">
    <section class="header">
      <h1>Emergency Case Feed</h1>
      <p>Processed reports, demand distribution, and system mode.</p>
    </section>

    <section class="panel">
      <div class="filters">
        <div>
          <label for="type-filter">Emergency type</label>
          <select id="type-filter">
            <option value="">All types</option>
            <option value="medical">medical</option>
            <option value="police">police</option>
            <option value="fire">fire</option>
          </select>
        </div>
        <div>
          <label for="priority-filter">Priority</label>
          <select id="priority-filter">
            <option value="">All priorities</option>
            <option value="high">high</option>
            <option value="medium">medium</option>
            <option value="low">low</option>
          </select>
        </div>
        <div>
          <label for="date-filter">Date</label>
          <input id="date-filter" type="date" />
        </div>
        <div class="full">
          <label for="refresh-btn">Action</label>
          <button id="refresh-btn" type="button">Refresh</button>
        </div>
      </div>
    </section>

    <section class="panel">
      <div class="stats">
        <div class="stat"><div class="label">Cases</div><div class="value" id="stat-count">0</div></div>
        <div class="stat"><div class="label">High Priority</div><div class="value" id="stat-high">0</div></div>
        <div class="stat"><div class="label">Demand (24h)</div><div class="value" id="stat-demand">0</div></div>
        <div class="stat"><div class="label">System Mode</div><div class="value" id="stat-mode">-</div></div>
      </div>
    </section>

    <section class="grid">
      <section class="panel">
        <h2>Demand by Location</h2>
        <div id="demand-by-location" class="demand-list"></div>
      </section>

      <section class="panel">
        <h2>Demand by Type</h2>
        <div id="demand-by-type" class="demand-list"></div>
      </section>

      <section class="panel" style="grid-column: 1 / -1;">
        <h2>Recent Cases</h2>
        <div id="case-timeline" class="timeline"></div>
      </section>
    </section>
  </div>

  <script>
    const state = {
      cases: [],
      summary: { total_requests_24h: 0, by_location: {}, by_emergency_type: {}, high_priority_load: 0 }
    };

    const els = {
      type: document.getElementById('type-filter'),
      priority: document.getElementById('priority-filter'),
      date: document.getElementById('date-filter'),
      refresh: document.getElementById('refresh-btn'),
      statCount: document.getElementById('stat-count'),
      statHigh: document.getElementById('stat-high'),
      statDemand: document.getElementById('stat-demand'),
      statMode: document.getElementById('stat-mode'),
      timeline: document.getElementById('case-timeline'),
      byLocation: document.getElementById('demand-by-location'),
      byType: document.getElementById('demand-by-type')
    };

    function formatNumber(value) {
      return new Intl.NumberFormat().format(value || 0);
    }

    async function fetchCases(type, priority, date) {
      const params = new URLSearchParams();
      if (type) params.set('type', type);
      if (priority) params.set('priority', priority);
      if (date) params.set('date', date);
      const res = await fetch('/api/cases?' + params.toString());
      if (!res.ok) throw new Error('case fetch failed');
      return await res.json();
    }

    async function fetchSummary() {
      const res = await fetch('/api/equity/summary');
      if (!res.ok) throw new Error('summary fetch failed');
      return await res.json();
    }

    async function fetchHealth() {
      const res = await fetch('/health');
      if (!res.ok) throw new Error('health fetch failed');
      return await res.json();
    }

    function renderStats(health) {
      const high = state.cases.filter(r => r.priority === 'high').length;
      els.statCount.textContent = formatNumber(state.cases.length);
      els.statHigh.textContent = formatNumber(high);
      els.statDemand.textContent = formatNumber(state.summary.total_requests_24h);
      els.statMode.textContent = (health && health.system_mode) || '-';
    }

    function renderTimeline() {
      const list = state.cases.slice(0, 30);
      if (list.length === 0) {
        els.timeline.innerHTML = '<div class="timeline-item">No cases match current filters.</div>';
        return;
      }

      els.timeline.innerHTML = list.map(r => {
        const priorityClass = 'priority-' + (r.priority || 'low');
        const created = r.created_at ? new Date(r.created_at).toLocaleString() : 'unknown';
        return '<div class="timeline-item ' + priorityClass + '">'
          + '<div><strong>' + (r.emergency_type || 'unknown') + '</strong> · <span class="' + priorityClass + '">' + (r.priority || '-') + '</span> · ' + (r.location || 'unknown location') + '</div>'
          + '<div class="meta">'
          + '<span>urgency: ' + (r.urgency || '-') + '</span>'
          + '<span>mode: ' + (r.system_mode || '-') + '</span>'
          + '<span>confidence: ' + (r.confidence != null ? r.confidence.toFixed(2) : '-') + '</span>'
          + '<span>created: ' + created + '</span>'
          + '</div></div>';
      }).join('');
    }

    function renderDemand(container, totals) {
      const rows = Object.entries(totals || {}).sort((a, b) => b[1] - a[1]);
      if (rows.length === 0) {
        container.innerHTML = '<div class="demand-item"><span>No demand in window</span><span>0</span></div>';
        return;
      }
      container.innerHTML = rows.map(([key, count]) => '<div class="demand-item"><span>' + key + '</span><strong>' + formatNumber(count) + '</strong></div>').join('');
    }

    async function refreshData() {
      try {
        const [cases, summary, health] = await Promise.all([
          fetchCases(els.type.value, els.priority.value, els.date.value),
          fetchSummary(),
          fetchHealth()
        ]);

        state.cases = Array.isArray(cases) ? cases : [];
        state.summary = summary || {};

        renderStats(health);
        renderTimeline();
        renderDemand(els.byLocation, state.summary.by_location);
        renderDemand(els.byType, state.summary.by_emergency_type);
      } catch (err) {
        els.timeline.innerHTML = '<div class="timeline-item">Failed to load case data.</div>';
      }
    }

    els.refresh.addEventListener('click', refreshData);
    els.type.addEventListener('change', refreshData);
    els.priority.addEventListener('change', refreshData);
    els.date.addEventListener('change', refreshData);

    refreshData();
  </script>
</body>
</html>`)
}
