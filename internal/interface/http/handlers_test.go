package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-signup/internal/application"
	"github.com/oksasatya/go-auth-signup/internal/domain/entity"
	"github.com/oksasatya/go-auth-signup/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

type mockAuthenticator struct{ mock.Mock }

func (m *mockAuthenticator) Authenticate(ctx context.Context, c application.Credentials) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) AddAccount(ctx context.Context, in application.AddAccountInput) (*entity.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) LoadByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	args := m.Called(ctx, q, size)
	hits, _ := args.Get(0).([]map[string]any)
	return hits, args.Error(1)
}

type recordingIndexer struct{ indexed []*entity.User }

func (r *recordingIndexer) IndexUser(_ context.Context, u *entity.User) error {
	r.indexed = append(r.indexed, u)
	return nil
}

type recordingPublisher struct{ jobs []any }

func (r *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	r.jobs = append(r.jobs, body)
	return nil
}

type fixedExpiry time.Time

func (f fixedExpiry) ExpiresAt() time.Time { return time.Time(f) }

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope mirrors response.APIResponse for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
