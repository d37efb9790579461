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
)

type authSut struct {
	sut       *application.DbAuthentication
	repo      *mockUserRepository
	comparer  *mockHasher
	encrypter *mockEncrypter
}

func makeAuthSut() authSut {
	repo := &mockUserRepository{}
	comparer := &mockHasher{}
	encrypter := &mockEncrypter{}
	return authSut{
		sut:       application.NewDbAuthentication(repo, comparer, encrypter, repo),
		repo:      repo,
		comparer:  comparer,
		encrypter: encrypter,
	}
}

func validUser() *entity.User {
	return &entity.User{
		ID:        "_valid_id",
		Username:  "thdq",
		BirthDate: time.Date(2021, 3, 21, 0, 0, 0, 0, time.UTC),
		Email:     "_valid@email",
		Name:      "_any_name",
		Password:  "_hashed_password",
	}
}

var creds = application.Credentials{Username: "thdq", Password: "_any_password"}

func TestDbAuthentication_Success(t *testing.T) {
	ctx := context.Background()
	s := makeAuthSut()

	s.repo.On("LoadByUsername", ctx, "thdq").Return(validUser(), nil).Once()
	s.comparer.On("Compare", "_any_password", "_hashed_password").Return(true, nil).Once()
	s.encrypter.On("Encrypt", "_valid_id").Return("_any_token", nil).Once()
	s.repo.On("UpdateAccessToken", ctx, "_valid_id", "_any_token").Return(nil).Once()

	token, err := s.sut.Authenticate(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "_any_token", token)

	s.repo.AssertExpectations(t)
	s.comparer.AssertExpectations(t)
	s.encrypter.AssertExpectations(t)
	s.encrypter.AssertNumberOfCalls(t, "Encrypt", 1)
	s.repo.AssertNumberOfCalls(t, "UpdateAccessToken", 1)
}

func TestDbAuthentication_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s := makeAuthSut()

	s.repo.On("LoadByUsername", ctx, "thdq").Return(nil, nil)

	token, err := s.sut.Authenticate(ctx, creds)
	require.NoError(t, err)
	assert.Empty(t, token)

	s.comparer.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	s.encrypter.AssertNotCalled(t, "Encrypt", mock.Anything)
	s.repo.AssertNotCalled(t, "UpdateAccessToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestDbAuthentication_PasswordMismatch(t *testing.T) {
	ctx := context.Background()
	s := makeAuthSut()

	s.repo.On("LoadByUsername", ctx, "thdq").Return(validUser(), nil)
	s.comparer.On("Compare", "_any_password", "_hashed_password").Return(false, nil)

	token, err := s.sut.Authenticate(ctx, creds)
	require.NoError(t, err)
	assert.Empty(t, token)

	s.encrypter.AssertNotCalled(t, "Encrypt", mock.Anything)
	s.repo.AssertNotCalled(t, "UpdateAccessToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestDbAuthentication_CollaboratorFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("lookup fails", func(t *testing.T) {
		s := makeAuthSut()
		s.repo.On("LoadByUsername", ctx, "thdq").Return(nil, boom)

		token, err := s.sut.Authenticate(ctx, creds)
		assert.Same(t, boom, err)
		assert.Empty(t, token)
		s.comparer.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
		s.encrypter.AssertNotCalled(t, "Encrypt", mock.Anything)
		s.repo.AssertNotCalled(t, "UpdateAccessToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("compare fails", func(t *testing.T) {
		s := makeAuthSut()
		s.repo.On("LoadByUsername", ctx, "thdq").Return(validUser(), nil)
		s.comparer.On("Compare", "_any_password", "_hashed_password").Return(false, boom)

		token, err := s.sut.Authenticate(ctx, creds)
		assert.Same(t, boom, err)
		assert.Empty(t, token)
		s.encrypter.AssertNotCalled(t, "Encrypt", mock.Anything)
		s.repo.AssertNotCalled(t, "UpdateAccessToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("encrypt fails", func(t *testing.T) {
		s := makeAuthSut()
		s.repo.On("LoadByUsername", ctx, "thdq").Return(validUser(), nil)
		s.comparer.On("Compare", "_any_password", "_hashed_password").Return(true, nil)
		s.encrypter.On("Encrypt", "_valid_id").Return("", boom)

		token, err := s.sut.Authenticate(ctx, creds)
		assert.Same(t, boom, err)
		assert.Empty(t, token)
		s.repo.AssertNotCalled(t, "UpdateAccessToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("token update fails", func(t *testing.T) {
		s := makeAuthSut()
		s.repo.On("LoadByUsername", ctx, "thdq").Return(validUser(), nil)
		s.comparer.On("Compare", "_any_password", "_hashed_password").Return(true, nil)
		s.encrypter.On("Encrypt", "_valid_id").Return("_any_token", nil)
		s.repo.On("UpdateAccessToken", ctx, "_valid_id", "_any_token").Return(boom)

		token, err := s.sut.Authenticate(ctx, creds)
		assert.Same(t, boom, err)
		assert.Empty(t, token)
	})
}

func TestDbAuthentication_ThreadsContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	s := makeAuthSut()

	s.repo.On("LoadByUsername", ctx, "thdq").Return(validUser(), nil)
	s.comparer.On("Compare", "_any_password", "_hashed_password").Return(true, nil)
	s.encrypter.On("Encrypt", "_valid_id").Return("_any_token", nil)
	s.repo.On("UpdateAccessToken", ctx, "_valid_id", "_any_token").Return(nil)

	_, err := s.sut.Authenticate(ctx, creds)
	require.NoError(t, err)
	s.repo.AssertExpectations(t)
}
