// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package page

// PlotlyURL is the plotly.js bundle the pages load.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Name}} | Visualizing YouTube</title>
<script src="` + PlotlyURL + `"></script>
<style>
:root { --accent: #dd2b2b; --bg: #d1d1d1; --plot: #e7e7e7; --fg: #1c1c1c; --muted: #606060; }
* { box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); margin: 0; line-height: 1.5; }
nav { display: flex; flex-wrap: wrap; align-items: center; gap: 1rem; background: var(--fg); padding: .75rem 1.5rem; }
nav a { color: #fff; text-decoration: none; font-size: .9375rem; }
nav a.brand { font-weight: 700; font-size: 1.125rem; margin-right: auto; }
nav a.brand span { color: var(--accent); }
nav a.active { border-bottom: 2px solid var(--accent); }
main { max-width: 1200px; margin: 0 auto; padding: 1.5rem; }
h1 { margin-top: 0; }
.intro p, .section p { max-width: 60rem; }
.section { margin-bottom: 2rem; }
.controls { display: flex; flex-wrap: wrap; gap: 1rem; align-items: flex-end; margin-bottom: 1rem; }
.controls label { display: flex; flex-direction: column; font-size: .8125rem; color: var(--muted); }
.controls select, .controls input { padding: .375rem .5rem; border: 1px solid var(--muted); border-radius: 4px; font-size: .875rem; }
.controls input[type=range] { min-width: 320px; padding: 0; }
.controls button { background: var(--accent); color: #fff; border: 0; border-radius: 4px; padding: .375rem .75rem; cursor: pointer; }
.charts { display: grid; grid-template-columns: repeat(auto-fit, minmax(420px, 1fr)); gap: 1rem; }
.chart { min-height: 420px; background: var(--plot); border-radius: 6px; }
.chart-error { color: var(--accent); padding: 1rem; }
.binder-text { font-style: italic; }
footer { text-align: center; font-size: .8125rem; color: var(--muted); padding: 1rem; }
footer a { color: var(--muted); }
</style>
</head>
<body>
<nav>
<a class="brand" href="/">Visualizing <span>YouTube</span></a>
{{range .Nav}}<a href="{{.Path}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a>
{{end}}</nav>
<main>
<h1>{{.Page.Heading}}</h1>
{{if .Page.Intro}}<div class="intro">
{{range .Page.Intro}}<p>{{.}}</p>
{{end}}</div>{{end}}
{{range $si, $s := .Sections}}<section class="section"{{if $s.Binder}} data-binder="{{$s.Binder}}" data-inputs="{{range $i, $in := $s.Inputs}}{{if $i}},{{end}}{{$in}}{{end}}"{{end}}>
{{if $s.Heading}}<h2>{{$s.Heading}}</h2>
{{end}}{{range $s.Text}}<p>{{.}}</p>
{{end}}{{if $s.Controls}}<div class="controls">
{{range $c := $s.Controls}}{{if eq $c.Kind "select"}}<label>{{$c.Label}}
<select data-param="{{$c.Param}}" name="{{$c.Param}}"{{if $.Static}} disabled{{end}}>
{{range $c.Options}}<option value="{{.Value}}"{{if eq .Value ($.Value $c.Param)}} selected{{end}}>{{.Label}}</option>
{{end}}</select></label>
{{else if eq $c.Kind "date"}}<label>{{$c.Label}}
<input type="date" data-param="{{$c.Param}}" name="{{$c.Param}}" min="{{$c.Min}}" max="{{$c.Max}}" value="{{$.Value $c.Param}}"{{if $.Static}} disabled{{end}}></label>
{{else if eq $c.Kind "slider"}}{{if $c.Stepper}}<button type="button" data-step="back"{{if $.Static}} disabled{{end}}>&lt;</button>
{{end}}<label>{{$c.Label}} <output data-for="{{$c.Param}}">{{$.Value $c.Param}}</output>
<input type="range" data-param="{{$c.Param}}" name="{{$c.Param}}" min="{{$c.Min}}" max="{{$c.Max}}" step="1" list="marks-{{$c.Param}}" value="{{$.Value $c.Param}}"{{if $.Static}} disabled{{end}}></label>
<datalist id="marks-{{$c.Param}}">{{range $c.Options}}<option value="{{.Value}}" label="{{.Label}}"></option>{{end}}</datalist>
{{if $c.Stepper}}<button type="button" data-step="forward"{{if $.Static}} disabled{{end}}>&gt;</button>
{{end}}{{end}}{{end}}</div>
{{end}}{{if $s.Charts}}<div class="charts">
{{range $s.Charts}}<div class="chart" id="chart-{{.ID}}" data-chart="{{.ID}}">{{if .Error}}<div class="chart-error">{{.Error}}</div>{{end}}</div>
{{end}}</div>
{{end}}{{if $s.ShowText}}<p class="binder-text">{{$s.ResultText}}</p>
{{end}}</section>
{{end}}</main>
<footer>Generated {{.GeneratedAt}}{{if .Imprint}} · <a href="{{.Imprint}}">Imprint</a>{{end}}</footer>
<script>
(function() {
  const initial = {{json .Initial}};
  const isStatic = {{.Static}};

  function chartEl(id) { return document.getElementById('chart-' + id); }

  function draw(id, fig) {
    const el = chartEl(id);
    if (!el || !fig) return;
    el.innerHTML = '';
    Plotly.react(el, fig.data || [], fig.layout || {}, {responsive: true});
  }

  function showError(id, msg) {
    const el = chartEl(id);
    if (!el) return;
    Plotly.purge(el);
    el.innerHTML = '';
    const div = document.createElement('div');
    div.className = 'chart-error';
    div.textContent = msg;
    el.appendChild(div);
  }

  function params() {
    const q = new URLSearchParams();
    document.querySelectorAll('[data-param]').forEach(function(el) { q.set(el.dataset.param, el.value); });
    return q;
  }

  async function refresh(section) {
    const name = section.dataset.binder;
    const ids = Array.from(section.querySelectorAll('[data-chart]')).map(function(el) { return el.dataset.chart; });
    try {
      const resp = await fetch('/api/charts/' + encodeURIComponent(name) + '?' + params().toString());
      const body = await resp.json();
      if (!resp.ok) { ids.forEach(function(id) { showError(id, body.error || resp.statusText); }); return; }
      (body.charts || []).forEach(function(c) { draw(c.id, c.figure); });
      const text = section.querySelector('.binder-text');
      if (text) text.textContent = body.text || '';
    } catch (err) {
      ids.forEach(function(id) { showError(id, String(err)); });
    }
  }

  function sectionsFor(param) {
    return Array.from(document.querySelectorAll('section[data-binder]')).filter(function(s) {
      return (s.dataset.inputs || '').split(',').indexOf(param) >= 0;
    });
  }

  Object.keys(initial).forEach(function(id) { draw(id, initial[id]); });
  if (isStatic) return;

  document.querySelectorAll('section[data-binder]').forEach(function(s) {
    const pending = Array.from(s.querySelectorAll('[data-chart]')).some(function(el) {
      return !(el.dataset.chart in initial) && !el.querySelector('.chart-error');
    });
    if (pending) refresh(s);
  });

  document.querySelectorAll('[data-param]').forEach(function(el) {
    el.addEventListener('input', function() {
      const out = document.querySelector('output[data-for="' + el.dataset.param + '"]');
      if (out) out.textContent = el.value;
    });
    el.addEventListener('change', function() { sectionsFor(el.dataset.param).forEach(refresh); });
  });

  document.querySelectorAll('[data-step]').forEach(function(btn) {
    btn.addEventListener('click', async function() {
      const resp = await fetch('/api/keywords/year?step=' + btn.dataset.step, {method: 'POST'});
      if (!resp.ok) return;
      const body = await resp.json();
      const slider = document.querySelector('input[data-param="year"]');
      slider.value = body.year;
      slider.dispatchEvent(new Event('input'));
      slider.dispatchEvent(new Event('change'));
    });
  });
})();
</script>
</body>
</html>
`
