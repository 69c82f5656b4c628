package domain

import "time"

// RangePresetID identifies one of the date-range picker's named ranges.
type RangePresetID string

const (
	RangeToday       RangePresetID = "today"
	RangeLast7Days   RangePresetID = "last-7-days"
	RangeLast30Days  RangePresetID = "last-30-days"
	RangeLast90Days  RangePresetID = "last-90-days"
	RangeThisMonth   RangePresetID = "this-month"
	RangeLastMonth   RangePresetID = "last-month"
	RangeThisQuarter RangePresetID = "this-quarter"
	RangeYTD         RangePresetID = "ytd"
	RangeCustom      RangePresetID = "custom"
)

// DateRange is what the date-range picker emits. Start and End are calendar
// days in the local location of now; End is inclusive.
type DateRange struct {
	Start  time.Time
	End    time.Time
	Preset RangePresetID
}

// RangePreset is a labelled, precomputed range offered by the picker.
type RangePreset struct {
	Label string
	Range DateRange
}

// RangePresets computes the picker's presets relative to now.
func RangePresets(now time.Time) []RangePreset {
	today := StartOfDay(now)
	y, m, _ := today.Date()
	loc := today.Location()
	quarterStart := time.Date(y, time.Month((int(m)-1)/3*3+1), 1, 0, 0, 0, 0, loc)
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, loc)

	mk := func(label string, id RangePresetID, start, end time.Time) RangePreset {
		return RangePreset{Label: label, Range: DateRange{Start: start, End: end, Preset: id}}
	}
	return []RangePreset{
		mk("Today", RangeToday, today, today),
		mk("Last 7 Days", RangeLast7Days, today.AddDate(0, 0, -6), today),
		mk("Last 30 Days", RangeLast30Days, today.AddDate(0, 0, -29), today),
		mk("Last 90 Days", RangeLast90Days, today.AddDate(0, 0, -89), today),
		mk("This Month", RangeThisMonth, monthStart, today),
		mk("Last Month", RangeLastMonth, monthStart.AddDate(0, -1, 0), monthStart.AddDate(0, 0, -1)),
		mk("This Quarter", RangeThisQuarter, quarterStart, today),
		mk("Year to Date", RangeYTD, time.Date(y, time.January, 1, 0, 0, 0, 0, loc), today),
	}
}

// DatePreset maps a picker range onto the coarser preset understood by
// Filters. Only last-30-days, last-90-days and ytd have a counterpart; every
// other range, including a custom one, becomes PresetAll and its explicit
// start/end dates are dropped.
func (r DateRange) DatePreset() DatePreset {
	switch r.Preset {
	case RangeLast30Days:
		return PresetLast30
	case RangeLast90Days:
		return PresetLast90
	case RangeYTD:
		return PresetYTD
	}
	return PresetAll
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
