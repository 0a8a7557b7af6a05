package domain

import "time"

// UserAccount is a registered user. Email is unique across all accounts.
//
// Password holds whatever the configured credential store produced when the
// account was created. With the default plain store that is the literal
// password — an inherited defect isolated behind credential.Store so a
// hashing implementation can be swapped in without touching call sites.
type UserAccount struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Redacted returns a copy safe to return over the API: the credential field
// is cleared. Persisted records keep the field; responses never include it.
func (u UserAccount) Redacted() UserAccount {
	u.Password = ""
	return u
}
