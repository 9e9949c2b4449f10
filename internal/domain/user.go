package domain

import (
	"errors"
	"strings"
)

// Common validation errors for User
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmailFormat  = errors.New("invalid email format")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered shop user. Password holds the plaintext
// only transiently during registration or a password change; HashedPassword
// is the stored bcrypt hash. Neither is ever serialized.
type User struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"-"`
	HashedPassword string `json:"-"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Zip            string `json:"zip,omitempty"`
	IsAdmin        bool   `json:"isAdmin"`
	IsUser         bool   `json:"isUser"`
}

// NewUser creates a new User with the given email, username and plaintext
// password. The ID is left zero; the store assigns it on insert.
// Returns an error if validation fails.
//
// NOTE: The caller (the user store) is responsible for hashing the password
// before the record is persisted.
func NewUser(email, username, password string) (*User, error) {
	user := &User{
		Email:    email,
		Username: username,
		Password: password,
		IsUser:   true,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmailFormat
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	// During creation or a password change the plaintext is present and must
	// meet length limits (72 is bcrypt's practical maximum). An existing user
	// loaded from the store carries only the hash.
	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a basic structural check of an email address:
// a local part, an @, and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
