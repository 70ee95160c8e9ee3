// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin indicates the highest privileged role. Super admin
	// accounts cannot be deleted, regardless of who is acting.
	RoleSuperAdmin Role = "super_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// Rank returns the position of the role in the total privilege order
// user < admin < super_admin. Unknown roles rank below every valid role.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return 0
	}
}

// Deletable reports whether accounts holding this role may be deleted at all.
func (r Role) Deletable() bool {
	return r != RoleSuperAdmin
}

// CanActOn is the authorization gate: an account may act on itself, or on
// any account whose role does not outrank its own. It never returns an
// error; callers translate false into a 403-class response.
func CanActOn(actor, target *User) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.ID == target.ID {
		return true
	}

	return actor.Role.Rank() >= target.Role.Rank()
}

// CanDelete extends CanActOn with the deletion exemption: super admin
// accounts are undeletable for everyone, including themselves.
func CanDelete(actor, target *User) bool {
	if target == nil || !target.Role.Deletable() {
		return false
	}

	return CanActOn(actor, target)
}
