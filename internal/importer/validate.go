package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidateRecordFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRecordFile(file *RecordFile) []error {
	var errs []error
	if len(file.Records) == 0 {
		return append(errs, fmt.Errorf("records: at least one record is required"))
	}

	ids := make(map[string]int)
	for i, r := range file.Records {
		errs = append(errs, validateRecord(fmt.Sprintf("records[%d]", i), &r)...)
		if r.ID == "" {
			continue
		}
		if prev, dup := ids[r.ID]; dup {
			errs = append(errs, fmt.Errorf("records[%d].id: duplicate id %q (first used by records[%d])", i, r.ID, prev))
		} else {
			ids[r.ID] = i
		}
	}
	return errs
}

func validateRecord(path string, r *RecordImport) []error {
	var errs []error

	if r.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	}
	errs = append(errs, validateEnum(path+".department", r.Department, domain.ValidDepartments)...)
	errs = append(errs, validateEnum(path+".region", r.Region, domain.ValidRegions)...)
	errs = append(errs, validateEnum(path+".status", r.Status, domain.ValidStatuses)...)
	errs = append(errs, validateEnum(path+".phase", r.Phase, domain.ValidPhases)...)

	for _, s := range []struct {
		field string
		v     *float64
	}{
		{"progress", r.Progress},
		{"efficiency", r.Efficiency},
		{"risk", r.Risk},
		{"reward", r.Reward},
	} {
		if s.v == nil {
			errs = append(errs, fmt.Errorf("%s.%s is required", path, s.field))
		} else if *s.v < 0 || *s.v > 100 {
			errs = append(errs, fmt.Errorf("%s.%s: %g out of range [0,100]", path, s.field, *s.v))
		}
	}

	for _, b := range []struct {
		field string
		v     *float64
	}{
		{"budget_allocated", r.BudgetAllocated},
		{"budget_spent", r.BudgetSpent},
	} {
		if b.v == nil {
			errs = append(errs, fmt.Errorf("%s.%s is required", path, b.field))
		} else if *b.v < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be >= 0, got %g", path, b.field, *b.v))
		}
	}

	if r.DelayDays != nil && *r.DelayDays < 0 {
		errs = append(errs, fmt.Errorf("%s.delay_days must be >= 0, got %d", path, *r.DelayDays))
	}

	if r.StartDate == "" {
		errs = append(errs, fmt.Errorf("%s.start_date is required", path))
	} else if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("%s.start_date: invalid date format %q (expected YYYY-MM-DD)", path, r.StartDate))
	}

	return errs
}

func validateEnum(path, v string, valid map[string]bool) []error {
	if v == "" {
		return []error{fmt.Errorf("%s is required", path)}
	}
	if !valid[v] {
		return []error{fmt.Errorf("%s: invalid value %q", path, v)}
	}
	return nil
}
