package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeES(t *testing.T, existsStatus int) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodHead {
			w.WriteHeader(existsStatus)
			return
		}
		_, _ = w.Write([]byte(`{"acknowledged":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestEnsureIndex_CreatesMissing(t *testing.T) {
	srv, calls := fakeES(t, http.StatusNotFound)
	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)

	require.NoError(t, EnsureIndex(context.Background(), es, "users", UsersIndexMapping))
	assert.Equal(t, []string{"HEAD /users", "PUT /users"}, *calls)
}

func TestEnsureIndex_KeepsExisting(t *testing.T) {
	srv, calls := fakeES(t, http.StatusOK)
	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)

	require.NoError(t, EnsureIndex(context.Background(), es, "users", UsersIndexMapping))
	assert.Equal(t, []string{"HEAD /users"}, *calls)
}

func TestEnsureIndex_UnexpectedStatus(t *testing.T) {
	srv, _ := fakeES(t, http.StatusForbidden)
	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)

	assert.Error(t, EnsureIndex(context.Background(), es, "users", UsersIndexMapping))
}
