package user

// RoleAdmin is the role carried by the single configured administrator.
const RoleAdmin = "admin"

// Identity represents an authenticated caller as resolved from a session
// token. There is no user table; the only identity in the system is the
// administrator configured at deployment time.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
