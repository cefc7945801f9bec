package domain

// User is a credential-gate record checked by exact string match. This is a
// UI gate for a single-operator tool, not a security boundary: no hashing,
// no session tokens.
type User struct {
	ID       string `json:"id" yaml:"id"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
}
