// testutil_test.go - Shared helpers for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mini-crm/config"
	"mini-crm/database"
	"mini-crm/models"
)

// setupTest wires a router against a fresh sqlite database in a temp dir,
// so every test starts from an empty store.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:        "5000",
		DatabaseURL: filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:   "test-secret",
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)

	return NewRouter(db, cfg, zerolog.Nop()), db, cfg
}

// doRequest performs a JSON request against the test router.
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

// registerAndLogin creates a user through the API and returns a valid
// token plus the user's id.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) (string, string) {
	t.Helper()

	w := doRequest(t, r, "POST", "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, 200, w.Code)

	w = doRequest(t, r, "POST", "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, 200, w.Code)

	var resp struct {
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

// createCustomer creates a customer through the API and returns it.
func createCustomer(t *testing.T, r *gin.Engine, token string, payload gin.H) models.Customer {
	t.Helper()

	w := doRequest(t, r, "POST", "/api/customers", token, payload)
	require.Equal(t, 201, w.Code)

	var customer models.Customer
	decodeBody(t, w, &customer)
	return customer
}
