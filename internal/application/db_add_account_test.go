package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-signup/internal/application"
	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
	repo "github.com/oksasatya/go-auth-signup/internal/domain/repository"
)

func signupInput() application.AddAccountInput {
	return application.AddAccountInput{
		Name:      "_any_name",
		Email:     "_any_mail@email.com",
		Username:  "_any_username",
		Password:  "_any_password",
		BirthDate: time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC),
	}
}

func TestDbAddAccount_StoresHashedPassword(t *testing.T) {
	ctx := context.Background()
	hasher := &mockHasher{}
	users := &mockUserRepository{}
	sut := application.NewDbAddAccount(hasher, users)

	hasher.On("Hash", "_any_password").Return("hashed_value", nil)
	users.On("Add", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Password == "hashed_value" && u.Username == "_any_username" && u.Email == "_any_mail@email.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = "_new_id"
	}).Return(nil)

	u, err := sut.AddAccount(ctx, signupInput())
	require.NoError(t, err)
	assert.Equal(t, "_new_id", u.ID)
	assert.Equal(t, "hashed_value", u.Password)
	assert.Equal(t, "_any_name", u.Name)
	assert.True(t, u.BirthDate.Equal(time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC)))
	users.AssertExpectations(t)
}

func TestDbAddAccount_HashFails(t *testing.T) {
	ctx := context.Background()
	hasher := &mockHasher{}
	users := &mockUserRepository{}
	sut := application.NewDbAddAccount(hasher, users)
	boom := errors.New("boom")

	hasher.On("Hash", "_any_password").Return("", boom)

	u, err := sut.AddAccount(ctx, signupInput())
	assert.Same(t, boom, err)
	assert.Nil(t, u)
	users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestDbAddAccount_RepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "duplicate username", repoErr: &repo.DuplicateError{Field: "username"}, wantErr: application.ErrUsernameTaken},
		{name: "duplicate email", repoErr: &repo.DuplicateError{Field: "email"}, wantErr: application.ErrEmailTaken},
		{name: "duplicate unknown field", repoErr: &repo.DuplicateError{Field: "id"}, wantErr: repo.ErrDuplicate},
		{name: "storage failure", repoErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			hasher := &mockHasher{}
			users := &mockUserRepository{}
			sut := application.NewDbAddAccount(hasher, users)

			hasher.On("Hash", "_any_password").Return("hashed_value", nil)
			users.On("Add", ctx, mock.AnythingOfType("*entity.User")).Return(tt.repoErr)

			u, err := sut.AddAccount(ctx, signupInput())
			require.Error(t, err)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
