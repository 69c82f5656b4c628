package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated RecordFile into records in file order.
// Call ValidateRecordFile first; Convert assumes the file is valid. Records
// without an id get a fresh UUID.
func Convert(file *RecordFile) ([]domain.ProjectRecord, error) {
	out := make([]domain.ProjectRecord, 0, len(file.Records))
	for i, r := range file.Records {
		start, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing records[%d].start_date: %w", i, err)
		}
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		rec := domain.ProjectRecord{
			ID:              id,
			Name:            r.Name,
			Owner:           r.Owner,
			Department:      domain.Department(r.Department),
			Region:          domain.Region(r.Region),
			Status:          domain.ProjectStatus(r.Status),
			Phase:           domain.Phase(r.Phase),
			Progress:        deref(r.Progress),
			Efficiency:      deref(r.Efficiency),
			Risk:            deref(r.Risk),
			Reward:          deref(r.Reward),
			BudgetAllocated: deref(r.BudgetAllocated),
			BudgetSpent:     deref(r.BudgetSpent),
			StartDate:       start,
		}
		if r.DelayDays != nil {
			rec.DelayDays = *r.DelayDays
		}
		out = append(out, rec)
	}
	return out, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
