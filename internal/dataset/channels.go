// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package dataset

// Channels lists the twelve channels with a comment-development table.
var Channels = []string{
	"baldandbankrupt",
	"kurzgesagt",
	"linustechtips",
	"markiplier",
	"mkbhd",
	"mrbeast",
	"pewdiepie",
	"smartereveryday",
	"theslowmoguys",
	"tomscott",
	"veritasium",
	"vsauce",
}

// DefaultChannel is the channel selected when the comment page first loads.
const DefaultChannel = "baldandbankrupt"

// Comment metric selector values.
const (
	MetricRelativeProbability = "Relative Probability"
	MetricAveragePerVideo     = "Average per Video"
)

// MaxCommentDay is the last day shown on the comment-development chart.
const MaxCommentDay = 100

// IsChannel reports whether name is one of the enumerated channels.
func IsChannel(name string) bool {
	for _, c := range Channels {
		if c == name {
			return true
		}
	}
	return false
}
