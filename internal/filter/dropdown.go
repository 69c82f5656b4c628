package filter

// Dropdown is the open/closed state of the facet menus. The menus are
// mutually exclusive, so a single value replaces three independent flags.
type Dropdown int

const (
	DropdownClosed Dropdown = iota
	DropdownDept
	DropdownRegion
	DropdownStatus
)

func (d Dropdown) String() string {
	switch d {
	case DropdownDept:
		return "dept-open"
	case DropdownRegion:
		return "region-open"
	case DropdownStatus:
		return "status-open"
	}
	return "closed"
}

// Toggle opens menu, or closes it when it is already the open one. Opening a
// menu closes whichever other menu was open.
func (d Dropdown) Toggle(menu Dropdown) Dropdown {
	if menu == DropdownClosed || d == menu {
		return DropdownClosed
	}
	return menu
}

// IsOpen reports whether menu is the open one.
func (d Dropdown) IsOpen(menu Dropdown) bool {
	return menu != DropdownClosed && d == menu
}
