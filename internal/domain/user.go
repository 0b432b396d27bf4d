package domain

// Registered account. Role is one of "user", "operator", or "admin".
type User struct {
	ID    int64
	Name  string
	Email string
	Role  string
}
