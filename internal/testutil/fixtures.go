package testutil

import (
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/google/uuid"
)

// Record options
type RecordOption func(*domain.ProjectRecord)

func WithID(id string) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.ID = id
	}
}

func WithOwner(owner string) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Owner = owner
	}
}

func WithDepartment(d domain.Department) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Department = d
	}
}

func WithRegion(reg domain.Region) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Region = reg
	}
}

func WithStatus(s domain.ProjectStatus) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Status = s
	}
}

func WithPhase(p domain.Phase) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Phase = p
	}
}

func WithProgress(v float64) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Progress = v
	}
}

func WithEfficiency(v float64) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Efficiency = v
	}
}

func WithRisk(v float64) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Risk = v
	}
}

func WithReward(v float64) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.Reward = v
	}
}

func WithBudget(allocated, spent float64) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.BudgetAllocated = allocated
		r.BudgetSpent = spent
	}
}

func WithDelay(days int) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.DelayDays = days
	}
}

func WithStartDate(d time.Time) RecordOption {
	return func(r *domain.ProjectRecord) {
		r.StartDate = d
	}
}

// NewTestRecord builds a record with mid-range defaults.
func NewTestRecord(name string, opts ...RecordOption) domain.ProjectRecord {
	r := domain.ProjectRecord{
		ID:              uuid.New().String(),
		Name:            name,
		Owner:           "Test Owner",
		Department:      domain.DeptEngineering,
		Region:          domain.RegionNorthAmerica,
		Status:          domain.StatusOnTrack,
		Phase:           domain.PhasePlanning,
		Progress:        50,
		Efficiency:      70,
		Risk:            30,
		Reward:          60,
		BudgetAllocated: 100000,
		BudgetSpent:     50000,
		StartDate:       time.Now().UTC().AddDate(0, 0, -10),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// day returns midnight UTC of the given date.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Portfolio returns a fixed eight-record portfolio with stable IDs and dates
// in the first half of 2026. The values are chosen so that every view has
// something to show, including an unallocated budget and several ties.
func Portfolio() []domain.ProjectRecord {
	return []domain.ProjectRecord{
		NewTestRecord("Apollo Platform", WithID("p-01"), WithOwner("Dana Reyes"),
			WithDepartment(domain.DeptEngineering), WithRegion(domain.RegionNorthAmerica),
			WithStatus(domain.StatusOnTrack), WithPhase(domain.PhaseExecution),
			WithProgress(72), WithEfficiency(84), WithRisk(22), WithReward(81),
			WithBudget(250000, 180000), WithDelay(0), WithStartDate(day(2026, time.March, 2))),
		NewTestRecord("Beacon Campaign", WithID("p-02"), WithOwner("Lee Park"),
			WithDepartment(domain.DeptMarketing), WithRegion(domain.RegionEurope),
			WithStatus(domain.StatusDelayed), WithPhase(domain.PhasePlanning),
			WithProgress(35), WithEfficiency(61), WithRisk(58), WithReward(64),
			WithBudget(90000, 47000), WithDelay(12), WithStartDate(day(2026, time.January, 19))),
		NewTestRecord("Cobalt Migration", WithID("p-03"), WithOwner("Sam Okafor"),
			WithDepartment(domain.DeptEngineering), WithRegion(domain.RegionEurope),
			WithStatus(domain.StatusBlocked), WithPhase(domain.PhaseExecution),
			WithProgress(41), WithEfficiency(52), WithRisk(77), WithReward(70),
			WithBudget(400000, 310000), WithDelay(30), WithStartDate(day(2026, time.February, 9))),
		NewTestRecord("Delta Pipeline", WithID("p-04"), WithOwner("Dana Reyes"),
			WithDepartment(domain.DeptSales), WithRegion(domain.RegionNorthAmerica),
			WithStatus(domain.StatusInProgress), WithPhase(domain.PhaseMonitoring),
			WithProgress(64), WithEfficiency(90), WithRisk(18), WithReward(55),
			WithBudget(120000, 60000), WithDelay(3), WithStartDate(day(2026, time.April, 21))),
		NewTestRecord("Echo Renewal", WithID("p-05"), WithOwner("Ari Cohen"),
			WithDepartment(domain.DeptFinance), WithRegion(domain.RegionAsiaPacific),
			WithStatus(domain.StatusOnTrack), WithPhase(domain.PhaseClosure),
			WithProgress(95), WithEfficiency(88), WithRisk(10), WithReward(40),
			WithBudget(0, 15000), WithDelay(0), WithStartDate(day(2026, time.January, 5))),
		NewTestRecord("Falcon Rollout", WithID("p-06"), WithOwner("Lee Park"),
			WithDepartment(domain.DeptEngineering), WithRegion(domain.RegionNorthAmerica),
			WithStatus(domain.StatusDelayed), WithPhase(domain.PhaseExecution),
			WithProgress(48), WithEfficiency(66), WithRisk(45), WithReward(77),
			WithBudget(300000, 270000), WithDelay(12), WithStartDate(day(2026, time.May, 11))),
		NewTestRecord("Gemini Outreach", WithID("p-07"), WithOwner("Mina Sato"),
			WithDepartment(domain.DeptMarketing), WithRegion(domain.RegionLatinAmerica),
			WithStatus(domain.StatusInProgress), WithPhase(domain.PhaseExecution),
			WithProgress(57), WithEfficiency(73), WithRisk(33), WithReward(68),
			WithBudget(75000, 30000), WithDelay(5), WithStartDate(day(2026, time.March, 30))),
		NewTestRecord("Helix Audit", WithID("p-08"), WithOwner("Ari Cohen"),
			WithDepartment(domain.DeptFinance), WithRegion(domain.RegionEurope),
			WithStatus(domain.StatusOnTrack), WithPhase(domain.PhasePlanning),
			WithProgress(20), WithEfficiency(79), WithRisk(25), WithReward(35),
			WithBudget(60000, 9000), WithDelay(0), WithStartDate(day(2026, time.June, 1))),
	}
}
