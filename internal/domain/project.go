package domain

import (
	"time"
)

// ProjectRecord is one row of the portfolio. Records are loaded once and then
// only read; every pipeline stage borrows them without mutation.
type ProjectRecord struct {
	ID         string
	Name       string
	Owner      string
	Department Department
	Region     Region
	Status     ProjectStatus
	Phase      Phase

	// Scores in [0,100].
	Progress   float64
	Efficiency float64
	Risk       float64
	Reward     float64

	BudgetAllocated float64
	BudgetSpent     float64
	DelayDays       int

	StartDate time.Time
}

// Utilization returns spent/allocated as a percentage. A zero allocation
// yields 0 rather than an infinite or NaN ratio.
func (p ProjectRecord) Utilization() float64 {
	return Ratio(p.BudgetSpent, p.BudgetAllocated) * 100
}

// Ratio divides num by den, returning 0 when den is zero. Every percentage in
// the aggregation views goes through this guard.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// DisplayID returns the best short identifier for display: the first eight
// characters of a long ID, or the ID itself.
func (p ProjectRecord) DisplayID() string {
	if len(p.ID) > 8 {
		return p.ID[:8]
	}
	return p.ID
}
