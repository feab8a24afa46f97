// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package binder maps filter selections to chart payloads. Each binder is a
// pure function of the asset store, an environment, and a filter.State. The
// binders register themselves by name so the HTTP and MCP surfaces can look
// them up without knowing each one.
package binder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets"
	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
	"github.com/DJBartoli/YouTube-Science-Project/internal/geo"
)

// ErrUnknownBinder is returned by Run for a name nobody registered.
var ErrUnknownBinder = errors.New("unknown binder")

// NoDataMessage is the annotation of the placeholder shown when a selection
// matches no rows.
const NoDataMessage = "No data available for the selected date."

// Env carries what binders need besides the selection.
type Env struct {
	Store    *assets.Store
	Geocoder geo.Geocoder
	Now      func() time.Time

	durationOnce sync.Once
	durationFig  *chart.Figure
	durationErr  error
}

// NewEnv returns an Env using the wall clock.
func NewEnv(store *assets.Store, geocoder geo.Geocoder) *Env {
	return &Env{Store: store, Geocoder: geocoder, Now: time.Now}
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Warm computes the static charts ahead of the first request.
func (e *Env) Warm() error {
	_, err := DurationInteraction(e)
	return err
}

// Chart is one named figure of a Result.
type Chart struct {
	ID     string        `json:"id"`
	Figure *chart.Figure `json:"figure"`
}

// Result is what a binder produces for one selection.
type Result struct {
	Charts []Chart `json:"charts"`
	Text   string  `json:"text,omitempty"`
}

// Figure returns the chart with the given ID, or nil.
func (r Result) Figure(id string) *chart.Figure {
	for _, c := range r.Charts {
		if c.ID == id {
			return c.Figure
		}
	}
	return nil
}

func single(id string, fig *chart.Figure) Result {
	return Result{Charts: []Chart{{ID: id, Figure: fig}}}
}

// Binder computes the charts of one page area.
type Binder interface {
	// Name returns the unique identifier for this binder (e.g., "weekly-trend").
	Name() string

	// Description returns a human-readable description of what this binder draws.
	Description() string

	// Inputs lists the filter parameters the binder reads.
	Inputs() []string

	// Bind computes the charts for st. Errors wrapping assets.ErrMissingAsset
	// mean a file the selection needs is absent.
	Bind(ctx context.Context, env *Env, st filter.State) (Result, error)
}

// funcBinder adapts a bind function to the Binder interface.
type funcBinder struct {
	name        string
	description string
	inputs      []string
	bind        func(ctx context.Context, env *Env, st filter.State) (Result, error)
}

func (b *funcBinder) Name() string        { return b.name }
func (b *funcBinder) Description() string { return b.description }
func (b *funcBinder) Inputs() []string    { return append([]string(nil), b.inputs...) }

func (b *funcBinder) Bind(ctx context.Context, env *Env, st filter.State) (Result, error) {
	return b.bind(ctx, env, st)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Binder)
	order    []string // insertion order for deterministic listing
)

// Register adds a binder to the global registry.
// It panics if a binder with the same name is already registered.
func Register(b Binder) {
	mu.Lock()
	defer mu.Unlock()
	name := b.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("binder already registered: %s", name))
	}
	registry[name] = b
	order = append(order, name)
}

// Get returns the binder with the given name, or nil if not found.
func Get(name string) Binder {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered binders in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Run looks up the named binder and binds st with it.
func Run(ctx context.Context, env *Env, name string, st filter.State) (Result, error) {
	b := Get(name)
	if b == nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownBinder, name)
	}
	res, err := b.Bind(ctx, env, st)
	if err != nil {
		return Result{}, fmt.Errorf("binder %s: %w", name, err)
	}
	return res, nil
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Binder)
	order = nil
}
