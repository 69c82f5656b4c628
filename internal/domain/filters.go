package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type DatePreset string

const (
	PresetAll    DatePreset = "All"
	PresetLast30 DatePreset = "Last 30 days"
	PresetLast90 DatePreset = "Last 90 days"
	PresetYTD    DatePreset = "YTD"
)

// DatePresets lists the presets in menu order.
var DatePresets = []DatePreset{PresetAll, PresetLast30, PresetLast90, PresetYTD}

// ParseDatePreset accepts the display value or a short alias
// ("all", "30d", "last30", "90d", "last90", "ytd"), case-insensitively.
// An empty string means PresetAll.
func ParseDatePreset(s string) (DatePreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return PresetAll, nil
	case "30d", "last30", "last-30-days", "last 30 days":
		return PresetLast30, nil
	case "90d", "last90", "last-90-days", "last 90 days":
		return PresetLast90, nil
	case "ytd", "year-to-date":
		return PresetYTD, nil
	}
	return "", fmt.Errorf("unknown date preset %q (want all, 30d, 90d or ytd)", s)
}

// Widest numeric bounds; together with empty facets they mean "no restriction".
const (
	DefaultMaxRisk   = 100.0
	DefaultMinReward = 0.0
)

// Filters is the effective filter state. Facet slices behave as sets: they
// never contain duplicates, and an empty set means the facet is unrestricted.
type Filters struct {
	Departments []Department    `json:"departments"`
	Regions     []Region        `json:"regions"`
	Statuses    []ProjectStatus `json:"statuses"`
	DatePreset  DatePreset      `json:"datePreset"`
	Search      string          `json:"search"`
	MaxRisk     float64         `json:"maxRisk"`
	MinReward   float64         `json:"minReward"`
}

// DefaultFilters returns the cleared filter state.
func DefaultFilters() Filters {
	return Filters{
		Departments: []Department{},
		Regions:     []Region{},
		Statuses:    []ProjectStatus{},
		DatePreset:  PresetAll,
		MaxRisk:     DefaultMaxRisk,
		MinReward:   DefaultMinReward,
	}
}

// UnmarshalJSON decodes over DefaultFilters so that absent fields stay
// unrestricted rather than zero.
func (f *Filters) UnmarshalJSON(data []byte) error {
	type plain Filters
	out := plain(DefaultFilters())
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*f = Filters(out)
	return nil
}

// Clone returns a deep copy so that callers can hand out snapshots that are
// never affected by later toggles.
func (f Filters) Clone() Filters {
	out := f
	out.Departments = cloneSet(f.Departments)
	out.Regions = cloneSet(f.Regions)
	out.Statuses = cloneSet(f.Statuses)
	return out
}

// Normalized returns a copy with duplicate facet values removed and an empty
// preset replaced by PresetAll. Persisted or hand-built filters go through it
// before use.
func (f Filters) Normalized() Filters {
	out := f.Clone()
	out.Departments = dedupe(out.Departments)
	out.Regions = dedupe(out.Regions)
	out.Statuses = dedupe(out.Statuses)
	if out.DatePreset == "" {
		out.DatePreset = PresetAll
	}
	return out
}

// IsUnrestricted reports whether the filters admit every record.
func (f Filters) IsUnrestricted() bool {
	return len(f.Departments) == 0 && len(f.Regions) == 0 && len(f.Statuses) == 0 &&
		(f.DatePreset == PresetAll || f.DatePreset == "") && f.Search == "" &&
		f.MaxRisk >= DefaultMaxRisk && f.MinReward <= DefaultMinReward
}

// Equal reports whether f and o select the same records. Facet order is
// significant, matching the order values were toggled in.
func (f Filters) Equal(o Filters) bool {
	return slices.Equal(f.Departments, o.Departments) &&
		slices.Equal(f.Regions, o.Regions) &&
		slices.Equal(f.Statuses, o.Statuses) &&
		f.DatePreset == o.DatePreset && f.Search == o.Search &&
		f.MaxRisk == o.MaxRisk && f.MinReward == o.MinReward
}

// Toggle adds v to set when absent and removes it when present. The input is
// never modified.
func Toggle[T comparable](set []T, v T) []T {
	if i := slices.Index(set, v); i >= 0 {
		out := make([]T, 0, len(set)-1)
		out = append(out, set[:i]...)
		return append(out, set[i+1:]...)
	}
	out := make([]T, 0, len(set)+1)
	out = append(out, set...)
	return append(out, v)
}

func cloneSet[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func dedupe[T comparable](s []T) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
