package shift

import (
	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
)

// ValidRoles returns the shift roles an employee may be assigned to, based
// on their permanent position. Servers and cashiers are restricted to the
// single role matching their position; baristas, managers and admins may
// cover any of the three operational roles. The asymmetry is a business
// rule, not a default.
//
// An unknown position yields an empty set; callers must treat that as
// "cannot assign" rather than an error.
func ValidRoles(position employee.Position) []Role {
	switch position {
	case employee.PositionServer:
		return []Role{RoleServer}
	case employee.PositionCashier:
		return []Role{RoleCashier}
	case employee.PositionBarista, employee.PositionManager, employee.PositionAdmin:
		return []Role{RoleServer, RoleBarista, RoleCashier}
	default:
		return nil
	}
}

// RoleAllowed reports whether role is eligible for the given position.
func RoleAllowed(position employee.Position, role Role) bool {
	for _, r := range ValidRoles(position) {
		if r == role {
			return true
		}
	}
	return false
}
