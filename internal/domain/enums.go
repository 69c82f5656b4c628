package domain

type Department string

const (
	DeptEngineering Department = "Engineering"
	DeptMarketing   Department = "Marketing"
	DeptSales       Department = "Sales"
	DeptOperations  Department = "Operations"
	DeptFinance     Department = "Finance"
	DeptHR          Department = "HR"
)

// Departments is the canonical department order used for grouping and menus.
var Departments = []Department{
	DeptEngineering, DeptMarketing, DeptSales, DeptOperations, DeptFinance, DeptHR,
}

type Region string

const (
	RegionNorthAmerica Region = "North America"
	RegionEurope       Region = "Europe"
	RegionAsiaPacific  Region = "Asia Pacific"
	RegionLatinAmerica Region = "Latin America"
)

var Regions = []Region{
	RegionNorthAmerica, RegionEurope, RegionAsiaPacific, RegionLatinAmerica,
}

type ProjectStatus string

const (
	StatusOnTrack    ProjectStatus = "On Track"
	StatusInProgress ProjectStatus = "In Progress"
	StatusDelayed    ProjectStatus = "Delayed"
	StatusBlocked    ProjectStatus = "Blocked"
)

var Statuses = []ProjectStatus{
	StatusOnTrack, StatusInProgress, StatusDelayed, StatusBlocked,
}

type Phase string

const (
	PhasePlanning   Phase = "Planning"
	PhaseExecution  Phase = "Execution"
	PhaseMonitoring Phase = "Monitoring"
	PhaseClosure    Phase = "Closure"
)

// Phases is fixed; the phase distribution view always has one column per entry.
var Phases = []Phase{
	PhasePlanning, PhaseExecution, PhaseMonitoring, PhaseClosure,
}

// ValidDepartments is the canonical set of accepted department strings.
var ValidDepartments = setOf(Departments)

// ValidRegions is the canonical set of accepted region strings.
var ValidRegions = setOf(Regions)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = setOf(Statuses)

// ValidPhases is the canonical set of accepted phase strings.
var ValidPhases = setOf(Phases)

func setOf[T ~string](vals []T) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[string(v)] = true
	}
	return m
}

// CanonicalIndex returns the position of v within order, or -1 when v is not
// one of the closed enumeration values.
func CanonicalIndex[T ~string](order []T, v T) int {
	for i, o := range order {
		if o == v {
			return i
		}
	}
	return -1
}
