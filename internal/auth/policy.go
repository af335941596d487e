package auth

import "github.com/hongminglow/movies-be/internal/models"

// Policy declares what a route requires of its caller.
type Policy struct {
	authenticated bool
	role          models.Role
}

// Public routes accept anonymous callers.
func Public() Policy { return Policy{} }

// Authenticated routes need a valid token.
func Authenticated() Policy { return Policy{authenticated: true} }

// RequireRole routes need a valid token whose role equals role.
func RequireRole(role models.Role) Policy {
	return Policy{authenticated: true, role: role}
}

// RequiresToken reports whether the route rejects anonymous callers.
func (p Policy) RequiresToken() bool { return p.authenticated }

// RequiredRole returns the role the route needs, or "" when any role will do.
func (p Policy) RequiredRole() models.Role { return p.role }

// Permits reports whether an authenticated caller with role may proceed.
func (p Policy) Permits(role models.Role) bool {
	return p.role == "" || p.role == role
}
