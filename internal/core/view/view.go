// Package view derives the filtered, sorted sequence a list screen renders.
// Derivation is a full recomputation over an in-memory slice on every input
// change; there is no incremental or streaming structure.
package view

import (
	"sort"
	"strings"
)

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortRating    SortKey = "rating"
)

// Filters are the user-selected list controls. Empty strings mean "no
// filter"; the literal "all" is accepted as an alias because the original
// storefront select widgets emit it.
type Filters struct {
	Search   string
	Category string
	Location string
	Sort     SortKey
}

// Fields is the view-relevant projection of one entity: what it can be
// searched on, filtered on, and sorted by. Missing prices and ratings must be
// reported as 0 so they sort as if zero.
type Fields struct {
	Label      string   // primary label, sorted lexicographically by SortName
	Category   string   // equality-matched against Filters.Category
	Location   string   // equality-matched against Filters.Location
	Searchable []string // case-insensitive substring targets for Filters.Search
	Price      float64
	Rating     float64
}

// Derive returns the entities that pass every filter, ordered by the sort
// key. The input slice is never mutated; sorting is stable; an unrecognized
// sort key preserves input order. Empty input yields an empty result.
func Derive[T any](items []T, f Filters, project func(T) Fields) []T {
	out := make([]T, 0, len(items))
	fields := make([]Fields, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, item := range items {
		p := project(item)
		if !matches(p, search, f) {
			continue
		}
		out = append(out, item)
		fields = append(fields, p)
	}

	less := comparator(f.Sort)
	if less == nil {
		return out
	}

	// Sort an index permutation so item and projection stay paired.
	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(fields[order[i]], fields[order[j]])
	})

	sorted := make([]T, len(out))
	for i, idx := range order {
		sorted[i] = out[idx]
	}
	return sorted
}

func matches(p Fields, search string, f Filters) bool {
	if search != "" && !containsFold(p.Searchable, search) {
		return false
	}
	if selected(f.Category) && p.Category != f.Category {
		return false
	}
	if selected(f.Location) && p.Location != f.Location {
		return false
	}
	return true
}

// selected reports whether a select-widget value actually narrows the list.
func selected(v string) bool {
	return v != "" && v != "all"
}

func containsFold(targets []string, search string) bool {
	for _, t := range targets {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}

func comparator(key SortKey) func(a, b Fields) bool {
	switch key {
	case SortName:
		return func(a, b Fields) bool { return a.Label < b.Label }
	case SortPriceLow:
		return func(a, b Fields) bool { return a.Price < b.Price }
	case SortPriceHigh:
		return func(a, b Fields) bool { return a.Price > b.Price }
	case SortRating:
		return func(a, b Fields) bool { return a.Rating > b.Rating }
	}
	return nil
}
