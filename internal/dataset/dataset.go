// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package dataset holds the fixed enumerations and table schemas behind the
// dashboard: the countries, channels, topics and duration buckets users can
// select, the valid year and date ranges, and the column names the upstream
// pipeline writes into each CSV file.
package dataset

// Column names as written by the upstream pipeline.
const (
	ColExecutionDate = "Execution Date"
	ColCategoryTitle = "Category Title"
	ColQuantity      = "Quantity"
	ColCountry       = "Country"

	ColYear     = "Year"
	ColDuration = "Duration"

	ColDay                 = "Day"
	ColRelativeProbability = "Relative Probability"
	ColAveragePerVideo     = "Average per Video"

	ColBucket         = "Category"
	ColLength         = "Length"
	ColLikePerView    = "Like/View"
	ColCommentPerView = "Comment/View"

	ColWords   = "words"
	ColNumbers = "numbers"
)

// DateLayout is the calendar date format used in every table.
const DateLayout = "2006-01-02"
