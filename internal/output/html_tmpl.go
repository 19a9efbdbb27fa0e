// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Riskpulse Dashboard</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --low: #10B981; --medium: #F59E0B; --high: #EF4444; --critical: #7F1D1D;
  --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --critical: #c53030; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card .delta { font-size: .75rem; color: var(--muted); }
.card-high .value { color: var(--high); }
.card-ok .value { color: var(--low); }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.filters { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; align-items: center; }
.filters select, .filters input { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; }
.filters input[type=text] { min-width: 180px; }
.note { color: var(--muted); font-size: .8125rem; margin-bottom: .5rem; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
thead { position: sticky; top: 0; background: var(--card-bg); }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
th { cursor: pointer; user-select: none; white-space: nowrap; }
th:hover { color: var(--accent); }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
.hidden { display: none; }
.risk { font-weight: 700; }
.risk-Low { color: var(--low); }
.risk-Medium { color: var(--medium); }
.risk-High { color: var(--high); }
.risk-Critical { color: var(--critical); }
.sort-arrow { font-size: .625rem; margin-left: .25rem; }
</style>
</head>
<body>
<header>
  <h1>Riskpulse Dashboard</h1>
  <p>Generated {{.GeneratedAt}} &middot; seed {{.Seed}} &middot; {{.StartDate}} to {{.EndDate}}</p>
  <p><code>{{.Filter}}</code></p>
</header>

<section class="cards" id="summary">
{{range .Cards}}  <div class="card {{.Class}}"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div><div class="delta">{{.Delta}}</div></div>
{{end}}</section>

<section class="charts" id="charts">
  <div class="chart-box"><h3>Risk Level Distribution</h3><div id="chart-risk"></div></div>
  <div class="chart-box"><h3>High-Risk Posts by Platform</h3><div id="chart-high-risk"></div></div>
  <div class="chart-box"><h3>Average Severity by Platform</h3><div id="chart-platforms"></div></div>
  <div class="chart-box"><h3>Risk Keywords by Average Severity</h3><div id="chart-keywords"></div></div>
  <div class="chart-box"><h3>Negative Sentiment by Hour</h3><div id="chart-hourly"></div></div>
  <div class="chart-box"><h3>Incidents per Month</h3><div id="chart-monthly"></div></div>
  <div class="chart-box"><h3>Average Daily Severity</h3><div id="chart-daily"></div></div>
</section>

<section id="filters" class="filters">
  <select id="filter-platform" onchange="applyFilters()">
    <option value="">All Platforms</option>
    {{range .Platforms}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
  <select id="filter-risk" onchange="applyFilters()">
    <option value="">All Risk Levels</option>
    {{range .RiskLevels}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
  <input type="text" id="filter-search" placeholder="Search..." oninput="applyFilters()">
</section>

<section id="events">
{{if .Truncated}}<p class="note">Showing the first {{len .EventRows}} of {{.TotalEvents}} posts.</p>{{end}}
<table>
<thead><tr>
  <th data-col="date">Date</th>
  <th data-col="hour">Hour</th>
  <th data-col="platform">Platform</th>
  <th data-col="risk">Risk Level</th>
  <th data-col="severity">Severity</th>
  <th data-col="sentiment">Sentiment</th>
  <th data-col="intervention">Intervention</th>
  <th data-col="keyword">Keyword</th>
</tr></thead>
<tbody>
{{range .EventRows}}
<tr class="event-row" data-platform="{{.Platform}}" data-risk="{{.RiskLevel}}">
  <td>{{.Date}}</td><td>{{.Hour}}</td><td>{{.Platform}}</td>
  <td><span class="risk risk-{{.RiskLevel}}">{{.RiskLevel}}</span></td>
  <td>{{printf "%.2f" .Severity}}</td><td>{{.Sentiment}}</td>
  <td>{{if .Intervention}}yes{{else}}no{{end}}</td><td>{{.Keyword}}</td>
</tr>
{{end}}
</tbody>
</table>
</section>

<script>
var chartData = {{json .ChartData}};
var riskColors = {Low:"var(--low)", Medium:"var(--medium)", High:"var(--high)", Critical:"var(--critical)"};

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function renderBarChart(id, labels, values, colors) {
  var c = document.getElementById(id); if (!c) return;
  var max = Math.max.apply(null, values) || 1;
  var h = labels.length * 28 + 4;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 400 "+h});
  for (var i = 0; i < labels.length; i++) {
    var w = (values[i]/max)*280;
    var y = i*28+2;
    svg.appendChild(svgEl("rect", {x:110, y:y, width:Math.max(w,2), height:20, fill:colors[i%colors.length], rx:3}));
    var txt = svgEl("text", {x:105, y:y+14, "text-anchor":"end", fill:"currentColor", "font-size":"11"});
    txt.textContent = labels[i].length > 18 ? labels[i].slice(0,16)+"..." : labels[i];
    svg.appendChild(txt);
    var val = svgEl("text", {x:115+w, y:y+14, fill:"currentColor", "font-size":"11"});
    val.textContent = values[i];
    svg.appendChild(val);
  }
  c.appendChild(svg);
}

function renderDoughnut(id, labels, values, colors) {
  var c = document.getElementById(id); if (!c) return;
  var total = values.reduce(function(a,b){return a+b},0);
  if (!total) return;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 300 160"});
  var cx=80, cy=80, r=60, angle=-Math.PI/2;
  for (var i = 0; i < values.length; i++) {
    var slice = (values[i]/total)*Math.PI*2;
    if (values[i] === 0) continue;
    var x1=cx+r*Math.cos(angle), y1=cy+r*Math.sin(angle);
    angle += slice;
    var x2=cx+r*Math.cos(angle), y2=cy+r*Math.sin(angle);
    var large = slice > Math.PI ? 1 : 0;
    var d = "M"+cx+","+cy+" L"+x1+","+y1+" A"+r+","+r+" 0 "+large+",1 "+x2+","+y2+" Z";
    svg.appendChild(svgEl("path", {d:d, fill:colors[i%colors.length]}));
  }
  svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:30, fill:"var(--card-bg)"}));
  for (var j = 0; j < labels.length; j++) {
    var ly = 16 + j*18;
    svg.appendChild(svgEl("rect", {x:175, y:ly-8, width:10, height:10, fill:colors[j%colors.length], rx:2}));
    var lt = svgEl("text", {x:190, y:ly+1, fill:"currentColor", "font-size":"11"});
    lt.textContent = labels[j]+" ("+(values[j]/total*100).toFixed(1)+"%)";
    svg.appendChild(lt);
  }
  c.appendChild(svg);
}

function renderArea(id, values, color) {
  var c = document.getElementById(id); if (!c || !values.length) return;
  var lo = Math.min.apply(null, values), hi = Math.max.apply(null, values);
  var span = (hi - lo) || 1, w = 400, h = 120;
  var step = values.length > 1 ? w/(values.length-1) : 0;
  var pts = ["0,"+h];
  for (var i = 0; i < values.length; i++) {
    pts.push((i*step).toFixed(1)+","+(h - (values[i]-lo)/span*(h-10)).toFixed(1));
  }
  pts.push(((values.length-1)*step).toFixed(1)+","+h);
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 "+w+" "+h});
  svg.appendChild(svgEl("polygon", {points:pts.join(" "), fill:color, "fill-opacity":"0.4", stroke:color}));
  c.appendChild(svg);
}

(function(){
  var rc = chartData.riskLabels.map(function(l){ return riskColors[l]; });
  renderDoughnut("chart-risk", chartData.riskLabels, chartData.riskValues, rc);
  renderBarChart("chart-high-risk", chartData.highRiskLabels, chartData.highRiskValues, ["var(--high)"]);
  renderBarChart("chart-platforms", chartData.platformLabels, chartData.platformValues, ["var(--accent)"]);
  renderBarChart("chart-keywords", chartData.keywordLabels, chartData.keywordValues, ["var(--critical)"]);
  var hours = []; for (var h = 0; h < 24; h++) hours.push((h<10?"0":"")+h+":00");
  renderBarChart("chart-hourly", hours, chartData.hourlyNegative, ["var(--high)"]);
  renderBarChart("chart-monthly", chartData.monthLabels, chartData.monthIncidents, ["var(--high)"]);
  renderArea("chart-daily", chartData.dailyValues, "#EF4444");
})();

function applyFilters() {
  var plat = document.getElementById("filter-platform").value;
  var risk = document.getElementById("filter-risk").value;
  var search = document.getElementById("filter-search").value.toLowerCase();
  var rows = document.querySelectorAll("tr.event-row");
  for (var i = 0; i < rows.length; i++) {
    var r = rows[i];
    var show = true;
    if (plat && r.dataset.platform !== plat) show = false;
    if (risk && r.dataset.risk !== risk) show = false;
    if (search && r.textContent.toLowerCase().indexOf(search) === -1) show = false;
    r.classList.toggle("hidden", !show);
  }
}

(function(){
  var headers = document.querySelectorAll("th[data-col]");
  var sortCol = "", sortAsc = true;
  for (var i = 0; i < headers.length; i++) {
    headers[i].addEventListener("click", (function(th){
      return function(){
        var col = th.dataset.col;
        if (sortCol === col) sortAsc = !sortAsc; else { sortCol = col; sortAsc = true; }
        var tbody = document.querySelector("tbody");
        var rows = Array.prototype.slice.call(tbody.querySelectorAll("tr.event-row"));
        var ci = Array.prototype.indexOf.call(th.parentNode.children, th);
        rows.sort(function(a,b){
          var av = a.children[ci].textContent, bv = b.children[ci].textContent;
          var an = parseFloat(av), bn = parseFloat(bv);
          if (!isNaN(an) && !isNaN(bn) && col !== "date") return sortAsc ? an-bn : bn-an;
          return sortAsc ? av.localeCompare(bv) : bv.localeCompare(av);
        });
        for (var k = 0; k < rows.length; k++) tbody.appendChild(rows[k]);
        document.querySelectorAll(".sort-arrow").forEach(function(e){e.remove();});
        var arrow = document.createElement("span");
        arrow.className = "sort-arrow";
        arrow.textContent = sortAsc ? " ▲" : " ▼";
        th.appendChild(arrow);
      };
    })(headers[i]));
  }
})();
</script>
</body>
</html>`
