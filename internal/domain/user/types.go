package user

import "slices"

// RoleManager is the only role that grants anything beyond booking a table.
const RoleManager = "Manager"

type Roles []string

func (r Roles) Has(role string) bool {
	return slices.Contains(r, role)
}

// IsManager must be evaluated against roles loaded for the current request.
func (r Roles) IsManager() bool {
	return r.Has(RoleManager)
}
