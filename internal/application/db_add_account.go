package application

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/go-auth-signup/internal/domain/cryptography"
	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-auth-signup/internal/domain/repository"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type AddAccountInput struct {
	Name      string
	Email     string
	Username  string
	Password  string
	BirthDate time.Time
}

// DbAddAccount registers a new user with a hashed password.
type DbAddAccount struct {
	hasher cryptography.Hasher
	users  repo.AddUserRepository
}

func NewDbAddAccount(hasher cryptography.Hasher, users repo.AddUserRepository) *DbAddAccount {
	return &DbAddAccount{hasher: hasher, users: users}
}

// AddAccount hashes the password, stores the user and returns it with the
// database-assigned fields populated.
func (a *DbAddAccount) AddAccount(ctx context.Context, in AddAccountInput) (*entity.User, error) {
	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username:  in.Username,
		Name:      in.Name,
		Email:     in.Email,
		BirthDate: in.BirthDate,
		Password:  hash,
	}
	if err := a.users.Add(ctx, u); err != nil {
		var dup *repo.DuplicateError
		if errors.As(err, &dup) {
			switch dup.Field {
			case "username":
				return nil, ErrUsernameTaken
			case "email":
				return nil, ErrEmailTaken
			}
		}
		return nil, err
	}
	return u, nil
}
