package entity

// Role represents the classification label on a user record.
type Role string

const (
	// RoleAdmin indicates a workshop administrator.
	RoleAdmin Role = "admin"
	// RoleMechanic indicates a mechanic.
	RoleMechanic Role = "mechanic"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}
