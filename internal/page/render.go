// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package page

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Name   string
	Path   string
	Active bool
}

// ChartView is one chart slot. A nil Figure with an empty Error is filled
// in by the browser.
type ChartView struct {
	ID     string
	Figure *chart.Figure
	Error  string
}

// SectionView is a Section with its computed charts. ResultText is the
// binder's text output; Section.Text holds the static paragraphs.
type SectionView struct {
	Section
	Inputs     []string
	Charts     []ChartView
	ResultText string
}

// View is everything the page template needs.
type View struct {
	Page        Page
	Nav         []NavLink
	Imprint     string
	Sections    []SectionView
	State       filter.State
	Static      bool
	GeneratedAt string

	values map[string][]string
}

// Value returns the selected value of a filter parameter.
func (v View) Value(param string) string {
	if vals := v.values[param]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Initial returns the figures computed into the page, keyed by chart ID.
func (v View) Initial() map[string]*chart.Figure {
	out := make(map[string]*chart.Figure)
	for _, s := range v.Sections {
		for _, c := range s.Charts {
			if c.Figure != nil {
				out[c.ID] = c.Figure
			}
		}
	}
	return out
}

// Builder renders pages against one binder environment.
type Builder struct {
	Env   *binder.Env
	Pages []Page

	nowFunc func() time.Time
}

// NewBuilder returns a Builder over pages.
func NewBuilder(env *binder.Env, pages []Page) *Builder {
	return &Builder{Env: env, Pages: pages}
}

// Build computes the initial charts of p for st. Deferred sections are left
// for the browser unless static is set. A failing binder only marks its own
// charts.
func (b *Builder) Build(ctx context.Context, p Page, st filter.State, static bool) View {
	now := time.Now()
	if b.nowFunc != nil {
		now = b.nowFunc()
	}

	v := View{
		Page:        p,
		State:       st,
		Static:      static,
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		values:      st.Values(),
	}
	for _, other := range b.Pages {
		if other.InNav {
			v.Nav = append(v.Nav, NavLink{Name: other.Name, Path: other.Path, Active: other.Slug == p.Slug})
		} else if other.Slug == "imprint" {
			v.Imprint = other.Path
		}
	}

	for _, s := range p.Sections {
		v.Sections = append(v.Sections, b.buildSection(ctx, s, st, static))
	}
	return v
}

func (b *Builder) buildSection(ctx context.Context, s Section, st filter.State, static bool) SectionView {
	sv := SectionView{Section: s}
	if s.Binder == "" {
		return sv
	}
	if bd := binder.Get(s.Binder); bd != nil {
		sv.Inputs = bd.Inputs()
	}

	for _, id := range s.Charts {
		sv.Charts = append(sv.Charts, ChartView{ID: id})
	}
	if s.Deferred && !static {
		return sv
	}

	res, err := binder.Run(ctx, b.Env, s.Binder, st)
	if err != nil {
		slog.Warn("binder failed", "binder", s.Binder, "error", err)
		for i := range sv.Charts {
			sv.Charts[i].Error = err.Error()
		}
		return sv
	}
	for i := range sv.Charts {
		sv.Charts[i].Figure = res.Figure(sv.Charts[i].ID)
	}
	sv.ResultText = res.Text
	return sv
}

var (
	pageTmplOnce sync.Once
	pageTmpl     *template.Template
)

// Render writes v as a complete HTML document.
func Render(w io.Writer, v View) error {
	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // figures are built from typed values
			},
		}).Parse(pageTemplate))
	})

	if err := pageTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}
