// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/fatih/color"
)

// Shared color printers.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// Status labels as printed in the inventory.
const (
	LabelOK      = "ok"
	LabelMissing = "MISSING"
	LabelInvalid = "INVALID"
)

// ColorStatus colors inventory status labels.
func ColorStatus(val string) string {
	switch val {
	case LabelInvalid:
		return colorRed.Sprint(val)
	case LabelMissing:
		return colorYellow.Sprint(val)
	case LabelOK:
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorCount colors a problem count: 0 is green, anything else red.
func colorCount(n int) string {
	s := strconv.Itoa(n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorRed.Sprint(s)
}
