// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package dataset

// Country is a selectable country: a display name and its ISO2 code.
type Country struct {
	Name string
	Code string
}

// Countries lists every selectable country in dropdown order.
var Countries = []Country{
	{"Austria", "AT"},
	{"Australia", "AU"},
	{"Belgium", "BE"},
	{"Brazil", "BR"},
	{"Bulgaria", "BG"},
	{"Canada", "CA"},
	{"Croatia", "HR"},
	{"Cyprus", "CY"},
	{"Czech Republic", "CZ"},
	{"Denmark", "DK"},
	{"Estonia", "EE"},
	{"Finland", "FI"},
	{"France", "FR"},
	{"Germany", "DE"},
	{"Greece", "GR"},
	{"Hungary", "HU"},
	{"India", "IN"},
	{"Ireland", "IE"},
	{"Italy", "IT"},
	{"Japan", "JP"},
	{"Latvia", "LV"},
	{"Lithuania", "LT"},
	{"Luxembourg", "LU"},
	{"Malta", "MT"},
	{"Netherlands", "NL"},
	{"Nigeria", "NG"},
	{"Poland", "PL"},
	{"Portugal", "PT"},
	{"Romania", "RO"},
	{"Slovakia", "SK"},
	{"Slovenia", "SI"},
	{"Spain", "ES"},
	{"Sweden", "SE"},
	{"United Kingdom", "GB"},
	{"USA", "US"},
}

// DefaultCountry is the country selected when a page first loads.
const DefaultCountry = "DE"

var countryNames = func() map[string]string {
	m := make(map[string]string, len(Countries))
	for _, c := range Countries {
		m[c.Code] = c.Name
	}
	return m
}()

// IsCountry reports whether code is one of the selectable countries.
func IsCountry(code string) bool {
	_, ok := countryNames[code]
	return ok
}

// CountryName returns the display name for code, or code itself when the
// code is not in the enumerated set.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
