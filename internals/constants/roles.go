package constants

import "fmt"

// Role is the single canonical role enumeration. Every permission check in
// the codebase goes through this type; no literal role strings elsewhere.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleTeacher, RoleStudent:
		return Role(s), true
	}
	return "", false
}

// Access is what a role may do under a given policy.
type Access int

const (
	AccessNone Access = iota
	AccessRead
	AccessFull
)

// Policy maps every role to an access level. Roles absent from the map get
// AccessNone.
type Policy map[Role]Access

var (
	// Admin writes, everyone else blocked.
	PolicyAdminOnly = Policy{RoleAdmin: AccessFull}

	// Admin + manager write, teacher/student read.
	PolicyAdminOrManager = Policy{
		RoleAdmin:   AccessFull,
		RoleManager: AccessFull,
		RoleTeacher: AccessRead,
		RoleStudent: AccessRead,
	}

	// Admin + teacher write, others read.
	PolicyAdminOrTeacher = Policy{
		RoleAdmin:   AccessFull,
		RoleManager: AccessRead,
		RoleTeacher: AccessFull,
		RoleStudent: AccessRead,
	}

	// Admin + student write, no one else.
	PolicyAdminOrStudent = Policy{
		RoleAdmin:   AccessFull,
		RoleStudent: AccessFull,
	}

	// Any authenticated role may read, only admin writes.
	PolicyAuthenticatedRead = Policy{
		RoleAdmin:   AccessFull,
		RoleManager: AccessRead,
		RoleTeacher: AccessRead,
		RoleStudent: AccessRead,
	}
)

// Allow decides (role, method) under a policy. Safe methods are
// GET/HEAD/OPTIONS; everything else needs AccessFull.
func Allow(p Policy, r Role, safeMethod bool) bool {
	switch p[r] {
	case AccessFull:
		return true
	case AccessRead:
		return safeMethod
	default:
		return false
	}
}

func IsSafeMethod(method string) bool {
	switch method {
	case "GET", "HEAD", "OPTIONS":
		return true
	}
	return false
}

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "❌ Only admin may access %s."
	ErrOnlyManagersCanAccess = "❌ Only admin or manager may access %s."
	ErrOnlyTeachersCanAccess = "❌ Only admin or teacher may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}
