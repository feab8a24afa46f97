// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package binder

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// group is one key of a grouped table with its rows.
type group struct {
	key  string
	rows dataframe.DataFrame
}

// groupBy splits df by the values of col, ordered by key.
func groupBy(df dataframe.DataFrame, col string) ([]group, error) {
	if df.Nrow() == 0 {
		return nil, nil
	}
	g := df.GroupBy(col)
	if g.Err != nil {
		return nil, fmt.Errorf("group by %s: %w", col, g.Err)
	}
	var out []group
	for _, rows := range g.GetGroups() {
		out = append(out, group{key: rows.Col(col).Elem(0).String(), rows: rows})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}

// sumBy totals value per distinct key, ordered by key.
func sumBy(df dataframe.DataFrame, key, value string) ([]string, []float64, error) {
	groups, err := groupBy(df, key)
	if err != nil {
		return nil, nil, err
	}
	keys := make([]string, len(groups))
	sums := make([]float64, len(groups))
	for i, g := range groups {
		keys[i] = g.key
		sums[i] = total(g.rows.Col(value).Float())
	}
	return keys, sums, nil
}

func total(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return total(vals) / float64(len(vals))
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
