package catalog

import (
	"net/url"
	"strings"

	"pcconcept/internal/models"
)

// Query is the filter state carried in the page URL.
type Query struct {
	Category string
	Search   string
}

func QueryFromValues(v url.Values) Query {
	return Query{
		Category: strings.TrimSpace(v.Get("category")),
		Search:   strings.TrimSpace(v.Get("search")),
	}
}

// Entry is the part of a product or review the listing logic reads.
type Entry struct {
	Name        string
	Brand       string
	Category    string
	Subcategory string
}

func ProductEntry(p models.Product) Entry {
	return Entry{Name: p.Name, Brand: p.Brand, Category: p.Category, Subcategory: p.Subcategory}
}

func ReviewEntry(r models.Review) Entry {
	return Entry{Name: r.ProductName, Brand: r.Brand, Category: r.Category, Subcategory: r.Subcategory}
}

// Filter applies the category filter, then the search filter when no
// category is selected. Source order is kept.
func Filter[T any](items []T, q Query, entry func(T) Entry) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(q.Search)
	for _, it := range items {
		e := entry(it)
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		if q.Category == "" && needle != "" && !matches(e, needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(e Entry, needle string) bool {
	for _, field := range []string{e.Name, e.Brand, e.Category, e.Subcategory} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Group holds every item of one bucket. Shown is the display prefix.
type Group[T any] struct {
	Name  string
	Items []T
	Shown []T
}

// Partition buckets items by key. Groups appear in first-seen order and items
// keep source order inside their group; nothing is sorted.
func Partition[T any](items []T, key func(T) string) []Group[T] {
	var groups []Group[T]
	index := map[string]int{}
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Name: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Listing is the derived, render-ready view of a flat list.
type Listing[T any] struct {
	Query  Query
	Title  string
	Groups []Group[T]
	Total  int
	Limit  int
}

// Build filters, groups and truncates items for display. limit <= 0 shows
// every item of a group.
func Build[T any](items []T, q Query, g *Grouping, entry func(T) Entry, limit int) Listing[T] {
	filtered := Filter(items, q, entry)
	groups := Partition(filtered, func(it T) string { return g.KeyFor(entry(it)) })
	for i := range groups {
		groups[i].Shown = groups[i].Items
		if limit > 0 && len(groups[i].Shown) > limit {
			groups[i].Shown = groups[i].Shown[:limit]
		}
	}
	return Listing[T]{
		Query:  q,
		Title:  g.Title(q),
		Groups: groups,
		Total:  len(filtered),
		Limit:  limit,
	}
}

func (l Listing[T]) Empty() bool {
	return l.Total == 0
}

// EmptyMessage is the "no results" line; noun is plural, e.g. "products".
func (l Listing[T]) EmptyMessage(noun string) string {
	switch {
	case l.Query.Search != "":
		return "No " + noun + " found matching \"" + l.Query.Search + "\""
	case l.Query.Category != "":
		return "No " + noun + " found in " + l.Query.Category
	default:
		return "No " + noun + " found"
	}
}
