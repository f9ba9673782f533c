package domain

// User is a schemaless user document. Registration stores whatever fields
// the caller sent; only the email key has meaning to the service.
type User map[string]any

// Email returns the user's email, or "" when absent or not a string.
func (u User) Email() string {
	s, _ := u["email"].(string)
	return s
}
