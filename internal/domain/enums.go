package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ParseUserRole maps an arbitrary role claim to a UserRole.
// Anything that is not "admin" is treated as a regular user.
func ParseUserRole(s string) UserRole {
	if UserRole(s) == UserRoleAdmin {
		return UserRoleAdmin
	}
	return UserRoleUser
}
