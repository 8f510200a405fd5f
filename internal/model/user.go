package model

// Role is the closed set of permission tags a user can hold.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleCust  Role = "Cust"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCust
}

// In reports whether r is a member of the given role set.
func (r Role) In(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

// User represents an account that can log in and place orders.
// Password holds the bcrypt hash and is never serialised.
type User struct {
	ID       int64  `json:"id" db:"userid"`
	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Role     Role   `json:"role" db:"role"`
}
