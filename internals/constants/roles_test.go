package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "manager", "teacher", "student"} {
		role, ok := ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, Role(s), role)
	}
	_, ok := ParseRole("superuser")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestIsSafeMethod(t *testing.T) {
	assert.True(t, IsSafeMethod("GET"))
	assert.True(t, IsSafeMethod("HEAD"))
	assert.True(t, IsSafeMethod("OPTIONS"))
	assert.False(t, IsSafeMethod("POST"))
	assert.False(t, IsSafeMethod("PUT"))
	assert.False(t, IsSafeMethod("PATCH"))
	assert.False(t, IsSafeMethod("DELETE"))
}

func TestAllow(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		role   Role
		safe   bool
		want   bool
	}{
		{"admin writes under admin-only", PolicyAdminOnly, RoleAdmin, false, true},
		{"manager blocked under admin-only even for reads", PolicyAdminOnly, RoleManager, true, false},
		{"teacher blocked under admin-only", PolicyAdminOnly, RoleTeacher, true, false},

		{"manager writes under admin-or-manager", PolicyAdminOrManager, RoleManager, false, true},
		{"teacher reads under admin-or-manager", PolicyAdminOrManager, RoleTeacher, true, true},
		{"teacher cannot write under admin-or-manager", PolicyAdminOrManager, RoleTeacher, false, false},
		{"student reads under admin-or-manager", PolicyAdminOrManager, RoleStudent, true, true},

		{"teacher writes under admin-or-teacher", PolicyAdminOrTeacher, RoleTeacher, false, true},
		{"manager reads under admin-or-teacher", PolicyAdminOrTeacher, RoleManager, true, true},
		{"manager cannot write under admin-or-teacher", PolicyAdminOrTeacher, RoleManager, false, false},

		{"student writes under admin-or-student", PolicyAdminOrStudent, RoleStudent, false, true},
		{"teacher blocked under admin-or-student", PolicyAdminOrStudent, RoleTeacher, true, false},

		{"student reads under authenticated-read", PolicyAuthenticatedRead, RoleStudent, true, true},
		{"student cannot write under authenticated-read", PolicyAuthenticatedRead, RoleStudent, false, false},
		{"admin writes under authenticated-read", PolicyAuthenticatedRead, RoleAdmin, false, true},

		{"unknown role always blocked", PolicyAuthenticatedRead, Role("ghost"), true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allow(tc.policy, tc.role, tc.safe))
		})
	}
}
