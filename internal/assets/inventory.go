// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// Status summarizes whether an asset could be used.
type Status string

// Asset statuses.
const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"
	StatusInvalid Status = "invalid"
)

// InventoryEntry describes one asset known to the store.
type InventoryEntry struct {
	Key  string
	Path string
	// Rows is the row count of a table, or -1 for files that are not tables.
	Rows int
	Err  error
}

// Status classifies the entry by its error.
func (e InventoryEntry) Status() Status {
	switch {
	case e.Err == nil:
		return StatusOK
	case errors.Is(e.Err, ErrMissingAsset):
		return StatusMissing
	default:
		return StatusInvalid
	}
}

// Inventory lists every table the store tried to load, sorted by key.
func (s *Store) Inventory() []InventoryEntry {
	var out []InventoryEntry
	for key, path := range s.paths {
		e := InventoryEntry{Key: key, Path: path, Rows: -1, Err: s.failures[key]}
		if e.Err == nil {
			switch key {
			case KeyCategories:
				e.Rows = len(s.categories)
			case KeyGeoJSON:
			default:
				e.Rows = s.tables[key].Nrow()
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// KeywordInventory checks that every file in the keyword mapping exists.
// Keyword assets are read on demand, so Load does not touch them.
func (s *Store) KeywordInventory() []InventoryEntry {
	var out []InventoryEntry
	for _, k := range s.keywords.Keys() {
		p := s.keywords[k]
		prefix := "keywords/" + k.Topic + "/" + strconv.Itoa(k.Year)
		out = append(out,
			s.statEntry(prefix+"/image", p.Image),
			s.statEntry(prefix+"/frequencies", p.Frequencies),
		)
	}
	return out
}

func (s *Store) statEntry(key, rel string) InventoryEntry {
	e := InventoryEntry{Key: key, Path: rel, Rows: -1}
	path := filepath.Join(s.root, rel)
	info, err := s.fs.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		e.Err = fmt.Errorf("%w: %s", ErrMissingAsset, path)
	case err != nil:
		e.Err = fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		e.Err = fmt.Errorf("%w: %s is a directory", ErrInvalidAsset, path)
	}
	return e
}
