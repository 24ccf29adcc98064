package models

// Role defines the caller role resolved from a verified Telegram identity.
// Roles are ordered: Anonymous < Student < Curator < Administrator.
type Role int

const (
	RoleAnonymous Role = iota
	RoleStudent
	RoleCurator
	RoleAdministrator
)

// String returns the role name used in responses and logs.
func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "STUDENT"
	case RoleCurator:
		return "CURATOR"
	case RoleAdministrator:
		return "ADMINISTRATOR"
	default:
		return "ANONYMOUS"
	}
}

// AtLeast reports whether the role meets the given minimum.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}
