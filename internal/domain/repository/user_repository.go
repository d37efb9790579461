package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
)

// ErrDuplicate is returned by AddUserRepository when a unique column clashes.
// Use errors.As with *DuplicateError to learn which field.
var ErrDuplicate = errors.New("duplicate")

// DuplicateError names the unique field that rejected an insert.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " already exists" }

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// LoadUserByUsernameRepository returns nil, nil when no user has the username.
type LoadUserByUsernameRepository interface {
	LoadByUsername(ctx context.Context, username string) (*entity.User, error)
}

// LoadUserByIDRepository returns nil, nil when no user has the id.
type LoadUserByIDRepository interface {
	LoadByID(ctx context.Context, id string) (*entity.User, error)
}

// UpdateAccessTokenRepository records the active access token of a user.
type UpdateAccessTokenRepository interface {
	UpdateAccessToken(ctx context.Context, id, token string) error
}

// AddUserRepository persists a new user and fills its generated fields.
type AddUserRepository interface {
	Add(ctx context.Context, u *entity.User) error
}

// UserRepository is the full set of user persistence operations.
type UserRepository interface {
	AddUserRepository
	LoadUserByUsernameRepository
	LoadUserByIDRepository
	UpdateAccessTokenRepository
}

// ErrNotFound is returned by updates that matched no user.
var ErrNotFound = errors.New("not found")
