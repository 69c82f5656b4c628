package filter

import (
	"fmt"

	"github.com/alexanderramin/vista/internal/domain"
)

// DepartmentLabel is the button caption for the department facet.
func DepartmentLabel(f domain.Filters) string {
	return facetLabel(f.Departments, "All Departments", "%d Departments")
}

// RegionLabel is the button caption for the region facet.
func RegionLabel(f domain.Filters) string {
	return facetLabel(f.Regions, "All Regions", "%d Regions")
}

// StatusLabel is the button caption for the status facet.
func StatusLabel(f domain.Filters) string {
	return facetLabel(f.Statuses, "All Statuses", "%d Selected")
}

func facetLabel[T ~string](set []T, none, many string) string {
	switch len(set) {
	case 0:
		return none
	case 1:
		return string(set[0])
	}
	return fmt.Sprintf(many, len(set))
}
