// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package filter

import "github.com/DJBartoli/YouTube-Science-Project/internal/dataset"

// Step is a year stepper button.
type Step string

// Stepper buttons.
const (
	StepBack    Step = "back"
	StepForward Step = "forward"
)

// StepYear moves year one step in the given direction. The result always
// lies in the keyword year range, even when year starts outside it. Any
// other step leaves year unchanged.
func StepYear(year int, step Step) int {
	switch step {
	case StepBack:
		return clampYear(year - 1)
	case StepForward:
		return clampYear(year + 1)
	default:
		return year
	}
}

func clampYear(year int) int {
	return min(max(year, dataset.MinYear), dataset.MaxYear)
}
