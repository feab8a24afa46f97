// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"strings"
	"time"
)

// FirstDataDate is the first day the category-distribution collection ran.
var FirstDataDate = time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)

// DefaultDate is the date preselected on the trends page.
const DefaultDate = "2024-03-15"

// DateWindow returns the selectable date range: FirstDataDate through the
// day before now.
func DateWindow(now time.Time) (first, last time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return FirstDataDate, today.AddDate(0, 0, -1)
}

// ParseDate accepts YYYY-MM-DD or any timestamp whose first ten characters
// are such a date, as date pickers tend to send either.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value[:len(DateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InDateWindow reports whether date lies inside DateWindow(now).
func InDateWindow(date, now time.Time) bool {
	first, last := DateWindow(now)
	return !date.Before(first) && !date.After(last)
}
