package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexanderramin/vista/internal/domain"
)

type queryError struct {
	msg string
}

func (e *queryError) Error() string { return e.msg }

func badQuery(format string, args ...any) error {
	return &queryError{msg: fmt.Sprintf(format, args...)}
}

// parseFacets overlays the facet query parameters onto base. Absent
// parameters leave base untouched.
func parseFacets(r *http.Request, base domain.Filters) (domain.Filters, error) {
	q := r.URL.Query()
	f := base.Clone()

	var err error
	if vals, ok := q["department"]; ok {
		if f.Departments, err = parseEnumSet[domain.Department]("department", vals, domain.ValidDepartments); err != nil {
			return f, err
		}
	}
	if vals, ok := q["region"]; ok {
		if f.Regions, err = parseEnumSet[domain.Region]("region", vals, domain.ValidRegions); err != nil {
			return f, err
		}
	}
	if vals, ok := q["status"]; ok {
		if f.Statuses, err = parseEnumSet[domain.ProjectStatus]("status", vals, domain.ValidStatuses); err != nil {
			return f, err
		}
	}
	if q.Has("preset") {
		p, err := domain.ParseDatePreset(q.Get("preset"))
		if err != nil {
			return f, badQuery("preset: %v", err)
		}
		f.DatePreset = p
	}
	if q.Has("search") {
		f.Search = q.Get("search")
	}
	if q.Has("maxRisk") {
		if f.MaxRisk, err = parseScore("maxRisk", q.Get("maxRisk")); err != nil {
			return f, err
		}
	}
	if q.Has("minReward") {
		if f.MinReward, err = parseScore("minReward", q.Get("minReward")); err != nil {
			return f, err
		}
	}
	return f.Normalized(), nil
}

func parseEnumSet[T ~string](name string, vals []string, valid map[string]bool) ([]T, error) {
	out := []T{}
	for _, v := range vals {
		if v == "" {
			continue
		}
		if !valid[v] {
			return nil, badQuery("%s: unknown value %q", name, v)
		}
		out = append(out, T(v))
	}
	return out, nil
}

// checkFacets rejects facet values outside the closed sets, matching what
// parseFacets enforces for query parameters.
func checkFacets(f domain.Filters) error {
	if err := checkEnumSet("department", f.Departments, domain.ValidDepartments); err != nil {
		return err
	}
	if err := checkEnumSet("region", f.Regions, domain.ValidRegions); err != nil {
		return err
	}
	return checkEnumSet("status", f.Statuses, domain.ValidStatuses)
}

func checkEnumSet[T ~string](name string, vals []T, valid map[string]bool) error {
	for _, v := range vals {
		if !valid[string(v)] {
			return badQuery("%s: unknown value %q", name, string(v))
		}
	}
	return nil
}

func parseScore(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, badQuery("%s: %q is not a number", name, s)
	}
	return v, nil
}

// parseTheme returns whether the dark palette was requested. An absent
// parameter keeps the configured default.
func parseTheme(r *http.Request, dark bool) (bool, error) {
	switch strings.ToLower(r.URL.Query().Get("theme")) {
	case "":
		return dark, nil
	case "light":
		return false, nil
	case "dark":
		return true, nil
	}
	return false, badQuery("theme: want light or dark")
}
