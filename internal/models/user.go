package models

// User roles accepted by registration. The check constraint on the users
// table enforces the same set.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// ValidRole reports whether role is one of the accepted user roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// User represents a user account in the database
type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}
