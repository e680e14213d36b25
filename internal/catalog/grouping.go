package catalog

import (
	"errors"
	"fmt"
)

// GroupBy names the field a category's listing is bucketed by.
type GroupBy string

const (
	GroupByBrand       GroupBy = "brand"
	GroupBySubcategory GroupBy = "subcategory"
)

// OtherGroup collects items whose group key is missing.
const OtherGroup = "Other"

// Category is one entry of the store's category table.
type Category struct {
	Name    string  // value used in URLs and by the backend, e.g. "Desktop/PCs"
	Label   string  // navigation label, e.g. "DESKTOP/PC"
	Title   string  // listing heading, e.g. "FOR DESKTOP / PC"
	GroupBy GroupBy
}

// Grouping knows, per category, whether listings are bucketed by brand or by
// subcategory. Unknown categories fall back to subcategory.
type Grouping struct {
	categories []Category
	byName     map[string]Category
}

func NewGrouping(categories []Category) (*Grouping, error) {
	g := &Grouping{byName: make(map[string]Category, len(categories))}
	for _, c := range categories {
		if c.Name == "" {
			return nil, errors.New("catalog: category without name")
		}
		if _, dup := g.byName[c.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", c.Name)
		}
		switch c.GroupBy {
		case GroupByBrand, GroupBySubcategory:
		case "":
			c.GroupBy = GroupBySubcategory
		default:
			return nil, fmt.Errorf("catalog: category %q: unknown group_by %q", c.Name, c.GroupBy)
		}
		if c.Label == "" {
			c.Label = c.Name
		}
		g.categories = append(g.categories, c)
		g.byName[c.Name] = c
	}
	return g, nil
}

// Categories returns the table in configured order.
func (g *Grouping) Categories() []Category {
	out := make([]Category, len(g.categories))
	copy(out, g.categories)
	return out
}

func (g *Grouping) Lookup(name string) (Category, bool) {
	c, ok := g.byName[name]
	return c, ok
}

func (g *Grouping) ModeFor(category string) GroupBy {
	if c, ok := g.byName[category]; ok {
		return c.GroupBy
	}
	return GroupBySubcategory
}

// KeyFor returns the group an entry lands in.
func (g *Grouping) KeyFor(e Entry) string {
	key := e.Subcategory
	if g.ModeFor(e.Category) == GroupByBrand {
		key = e.Brand
	}
	if key == "" {
		return OtherGroup
	}
	return key
}

// Title is the listing heading for q.
func (g *Grouping) Title(q Query) string {
	if q.Search != "" {
		return `SEARCH RESULTS FOR "` + q.Search + `"`
	}
	if q.Category == "" {
		return "ALL PRODUCTS"
	}
	if c, ok := g.byName[q.Category]; ok && c.Title != "" {
		return c.Title
	}
	return "PRODUCTS"
}
