package user

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Full access, including system status
	RoleHR       Role = "HR"       // Manages people data and reports
	RoleManager  Role = "MANAGER"  // Approves leave, views reports
	RoleEmployee Role = "EMPLOYEE" // Regular employee
)

var Roles = []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
