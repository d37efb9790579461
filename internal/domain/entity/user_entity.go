package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and AccessToken the last token issued on login
// (empty when logged out).
type User struct {
	ID          string
	Username    string
	Name        string
	Email       string
	BirthDate   time.Time
	Password    string
	AccessToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
