// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package session keeps each browser's filter.State between requests.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 24 * time.Hour

// Store maps session IDs to filter state. Entries expire after the TTL
// since their last update.
type Store struct {
	mu    sync.Mutex
	items *gocache.Cache
}

// NewStore creates an empty store. A non-positive ttl selects DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{items: gocache.New(ttl, ttl/2)}
}

// New starts a session with the default state and returns its ID.
func (s *Store) New() string {
	id := uuid.NewString()
	s.items.SetDefault(id, filter.Default())
	return id
}

// Get returns the state of session id.
func (s *Store) Get(id string) (filter.State, bool) {
	v, ok := s.items.Get(id)
	if !ok {
		return filter.State{}, false
	}
	return v.(filter.State), true
}

// Update applies fn to the state of session id and stores the result. An
// unknown or expired session starts from filter.Default.
func (s *Store) Update(id string, fn func(filter.State) filter.State) filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.Get(id)
	if !ok {
		st = filter.Default()
	}
	st = fn(st)
	s.items.SetDefault(id, st)
	return st
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.items.ItemCount()
}
