package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// facetFlags are the filter flags shared by every command that reads the
// portfolio.
type facetFlags struct {
	departments []string
	regions     []string
	statuses    []string
	preset      string
	search      string
	maxRisk     float64
	minReward   float64
	saved       string
	noDefault   bool
}

func (ff *facetFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&ff.departments, "dept", nil, "Department to include (repeatable)")
	fs.StringSliceVar(&ff.regions, "region", nil, "Region to include (repeatable)")
	fs.StringSliceVar(&ff.statuses, "status", nil, "Status to include (repeatable)")
	fs.StringVar(&ff.preset, "preset", "all", "Date preset: all, 30d, 90d or ytd")
	fs.StringVar(&ff.search, "search", "", "Match name, owner or department (case-insensitive)")
	fs.Float64Var(&ff.maxRisk, "max-risk", domain.DefaultMaxRisk, "Highest risk score to include")
	fs.Float64Var(&ff.minReward, "min-reward", domain.DefaultMinReward, "Lowest reward score to include")
	fs.StringVar(&ff.saved, "saved", "", "Start from a saved filter (ID or name)")
	fs.BoolVar(&ff.noDefault, "no-default", false, "Ignore the default saved filter")
}

// resolve builds the effective filters: the named saved filter, else the
// default saved filter, else the cleared state, with explicitly set flags
// layered on top.
func (ff *facetFlags) resolve(cmd *cobra.Command, app *App) (domain.Filters, error) {
	ctx := cmd.Context()
	f := domain.DefaultFilters()

	switch {
	case ff.saved != "":
		sf, err := app.Filters.Get(ctx, ff.saved)
		if err != nil {
			return f, err
		}
		f = sf.Filters
	case !ff.noDefault && app.Filters != nil:
		sf, ok, err := app.Filters.Default(ctx)
		if err != nil {
			return f, err
		}
		if ok {
			f = sf.Filters
		}
	}

	return ff.overlay(cmd.Flags(), f)
}

func (ff *facetFlags) overlay(fs *pflag.FlagSet, f domain.Filters) (domain.Filters, error) {
	var err error
	if fs.Changed("dept") {
		if f.Departments, err = parseFacet("dept", ff.departments, domain.Departments); err != nil {
			return f, err
		}
	}
	if fs.Changed("region") {
		if f.Regions, err = parseFacet("region", ff.regions, domain.Regions); err != nil {
			return f, err
		}
	}
	if fs.Changed("status") {
		if f.Statuses, err = parseFacet("status", ff.statuses, domain.Statuses); err != nil {
			return f, err
		}
	}
	if fs.Changed("preset") {
		if f.DatePreset, err = domain.ParseDatePreset(ff.preset); err != nil {
			return f, err
		}
	}
	if fs.Changed("search") {
		f.Search = ff.search
	}
	if fs.Changed("max-risk") {
		if f.MaxRisk, err = checkScore("max-risk", ff.maxRisk); err != nil {
			return f, err
		}
	}
	if fs.Changed("min-reward") {
		if f.MinReward, err = checkScore("min-reward", ff.minReward); err != nil {
			return f, err
		}
	}
	return f.Normalized(), nil
}

// parseFacet matches values against the closed enumeration case-insensitively
// and returns them in canonical spelling.
func parseFacet[T ~string](flag string, vals []string, order []T) ([]T, error) {
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		match := false
		for _, o := range order {
			if strings.EqualFold(string(o), v) {
				out = append(out, o)
				match = true
				break
			}
		}
		if !match {
			return nil, fmt.Errorf("--%s: unknown value %q (want one of %s)", flag, v, joinValues(order))
		}
	}
	return out, nil
}

func joinValues[T ~string](order []T) string {
	s := make([]string, len(order))
	for i, o := range order {
		s[i] = string(o)
	}
	return strings.Join(s, ", ")
}

func checkScore(flag string, v float64) (float64, error) {
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("--%s: want a score between 0 and 100, got %g", flag, v)
	}
	return v, nil
}
