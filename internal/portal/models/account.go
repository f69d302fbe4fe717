// Package models defines the records held by the portal's local store.
package models

// Role is the access level of an account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Account is a portal user. DocumentID is an external document identifier
// (DNI, CIF, etc.) and is not guaranteed to be unique across accounts.
//
// Secret is the login credential. It lives only inside the credential store;
// values that leave the service boundary must be sanitized first.
type Account struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	DocumentID string `json:"documentId"`
	Role       Role   `json:"role"`
	Secret     string `json:"secret,omitempty"`
}

// Sanitized returns a copy of the account with the secret stripped.
// Session markers and UI views must only ever see sanitized accounts.
func (a Account) Sanitized() Account {
	a.Secret = ""
	return a
}
