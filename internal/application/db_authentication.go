package application

import (
	"context"

	"github.com/oksasatya/go-auth-signup/internal/domain/cryptography"
	repo "github.com/oksasatya/go-auth-signup/internal/domain/repository"
)

// Credentials is the username/password pair presented on login.
type Credentials struct {
	Username string
	Password string
}

// DbAuthentication issues an access token for valid credentials and records
// it against the user.
type DbAuthentication struct {
	loader    repo.LoadUserByUsernameRepository
	comparer  cryptography.HashComparer
	encrypter cryptography.Encrypter
	tokens    repo.UpdateAccessTokenRepository
}

func NewDbAuthentication(
	loader repo.LoadUserByUsernameRepository,
	comparer cryptography.HashComparer,
	encrypter cryptography.Encrypter,
	tokens repo.UpdateAccessTokenRepository,
) *DbAuthentication {
	return &DbAuthentication{
		loader:    loader,
		comparer:  comparer,
		encrypter: encrypter,
		tokens:    tokens,
	}
}

// Authenticate returns the new access token, or "" with a nil error when the
// user does not exist or the password does not match. Collaborator errors are
// returned as is.
func (a *DbAuthentication) Authenticate(ctx context.Context, c Credentials) (string, error) {
	u, err := a.loader.LoadByUsername(ctx, c.Username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}

	ok, err := a.comparer.Compare(c.Password, u.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	token, err := a.encrypter.Encrypt(u.ID)
	if err != nil {
		return "", err
	}

	if err := a.tokens.UpdateAccessToken(ctx, u.ID, token); err != nil {
		return "", err
	}
	return token, nil
}
