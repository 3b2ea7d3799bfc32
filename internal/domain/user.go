package domain

// User represents a registered user of the Streamly API.
//
// HashedPassword holds a hex-encoded one-way digest of the password; the
// plaintext is never stored. CCNumber is optional: an empty string means the
// user has no credit card on file.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Email          string `json:"email"`
	Birthdate      string `json:"birthdate"`
	CCNumber       string `json:"ccNumber,omitempty"`
}

// HasCreditCard reports whether the user has a credit card on file.
func (u *User) HasCreditCard() bool {
	return u.CCNumber != ""
}
