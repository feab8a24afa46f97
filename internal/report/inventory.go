// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package report renders terminal reports about the loaded data.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets"
)

// Summary counts inventory entries by status.
type Summary struct {
	OK      int
	Missing int
	Invalid int
}

// Problems returns the number of entries that are not usable.
func (s Summary) Problems() int { return s.Missing + s.Invalid }

// Summarize counts entries by status.
func Summarize(entries []assets.InventoryEntry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status() {
		case assets.StatusOK:
			s.OK++
		case assets.StatusMissing:
			s.Missing++
		default:
			s.Invalid++
		}
	}
	return s
}

func statusLabel(st assets.Status) string {
	switch st {
	case assets.StatusOK:
		return LabelOK
	case assets.StatusMissing:
		return LabelMissing
	default:
		return LabelInvalid
	}
}

// InventoryOptions controls RenderInventory.
type InventoryOptions struct {
	// ProblemsOnly hides entries that loaded fine.
	ProblemsOnly bool
}

// RenderInventory writes a titled status table of entries followed by a
// summary line.
func RenderInventory(w io.Writer, title string, entries []assets.InventoryEntry, opts InventoryOptions) error {
	if _, err := fmt.Fprintf(w, "%s\n", SectionTitle(title)); err != nil {
		return fmt.Errorf("render inventory: %w", err)
	}

	tbl := NewTable(
		Column{Header: "Status", Color: ColorStatus},
		Column{Header: "Asset"},
		Column{Header: "Rows", Align: AlignRight},
		Column{Header: "Path"},
		Column{Header: "Error"},
	)
	for _, e := range entries {
		st := e.Status()
		if opts.ProblemsOnly && st == assets.StatusOK {
			continue
		}
		rows := ""
		if e.Rows >= 0 {
			rows = strconv.Itoa(e.Rows)
		}
		msg := ""
		if e.Err != nil {
			msg = e.Err.Error()
		}
		tbl.AddRow(statusLabel(st), e.Key, rows, e.Path, msg)
	}
	if tbl.Len() > 0 {
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	s := Summarize(entries)
	if _, err := fmt.Fprintf(w, "  %d ok, %s missing, %s invalid\n\n",
		s.OK, colorCount(s.Missing), colorCount(s.Invalid)); err != nil {
		return fmt.Errorf("render inventory: %w", err)
	}
	return nil
}
