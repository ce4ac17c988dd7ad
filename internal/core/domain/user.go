package domain

const (
	RoleAdmin  = "admin"
	RoleNormal = "normal"
)

// User models an authenticated actor. Accounts are created by admins only;
// there is no self-registration.
type User struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleNormal
}
