package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Add(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) LoadByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) LoadByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) UpdateAccessToken(ctx context.Context, id, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(value string) (string, error) {
	args := m.Called(value)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Compare(value, hash string) (bool, error) {
	args := m.Called(value, hash)
	return args.Bool(0), args.Error(1)
}

type mockEncrypter struct {
	mock.Mock
}

func (m *mockEncrypter) Encrypt(value string) (string, error) {
	args := m.Called(value)
	return args.String(0), args.Error(1)
}
