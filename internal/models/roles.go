package models

// Role is the single authorization attribute carried by a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// OrDefault returns RoleUser for an empty role.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleUser
	}
	return r
}
