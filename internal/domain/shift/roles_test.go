package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
)

func TestValidRoles(t *testing.T) {
	tests := []struct {
		name     string
		position employee.Position
		want     []Role
	}{
		{
			name:     "server only serves",
			position: employee.PositionServer,
			want:     []Role{RoleServer},
		},
		{
			name:     "cashier only cashiers",
			position: employee.PositionCashier,
			want:     []Role{RoleCashier},
		},
		{
			name:     "barista covers all roles",
			position: employee.PositionBarista,
			want:     []Role{RoleServer, RoleBarista, RoleCashier},
		},
		{
			name:     "manager covers all roles",
			position: employee.PositionManager,
			want:     []Role{RoleServer, RoleBarista, RoleCashier},
		},
		{
			name:     "admin covers all roles",
			position: employee.PositionAdmin,
			want:     []Role{RoleServer, RoleBarista, RoleCashier},
		},
		{
			name:     "unknown position gets nothing",
			position: employee.Position("Intern"),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRoles(tt.position))
		})
	}
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed(employee.PositionServer, RoleServer))
	assert.False(t, RoleAllowed(employee.PositionServer, RoleBarista))
	assert.False(t, RoleAllowed(employee.PositionCashier, RoleServer))
	assert.True(t, RoleAllowed(employee.PositionManager, RoleCashier))
	assert.False(t, RoleAllowed(employee.Position(""), RoleServer))
}
