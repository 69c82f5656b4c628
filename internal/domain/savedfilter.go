package domain

import (
	"fmt"
	"strings"
	"time"
)

// SavedFilter is a named snapshot of Filters. At most one saved filter in a
// store carries IsDefault.
type SavedFilter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Filters   Filters   `json:"filters"`
	CreatedAt time.Time `json:"createdAt"`
	IsDefault bool      `json:"isDefault"`
}

// Describe summarizes which parts of the filter are active, e.g.
// "2 depts, 1 region, search". Unrestricted facets are left out.
func (s SavedFilter) Describe() string {
	f := s.Filters
	var parts []string
	if n := len(f.Departments); n > 0 {
		parts = append(parts, plural(n, "dept", "depts"))
	}
	if n := len(f.Regions); n > 0 {
		parts = append(parts, plural(n, "region", "regions"))
	}
	if n := len(f.Statuses); n > 0 {
		parts = append(parts, plural(n, "status", "statuses"))
	}
	if f.Search != "" {
		parts = append(parts, "search")
	}
	if len(parts) == 0 {
		return "All projects"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
