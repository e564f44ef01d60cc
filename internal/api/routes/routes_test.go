package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/config"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := config.Config{
		Environment:  "test",
		JWTSecret:    "test-secret",
		DatabasePath: t.TempDir() + "/barakatna.db",
		BackupDir:    t.TempDir(),
	}

	router := gin.New()
	require.NoError(t, Register(router, db, cfg))
	return router
}

func TestRegister_HealthIsPublic(t *testing.T) {
	router := setupRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRegister_MetricsIsPublic(t *testing.T) {
	router := setupRouter(t)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barakatna_audit_records_total")
}

func TestRegister_ProtectedRoutesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{
		"/api/v1/audit/records",
		"/api/v1/audit/timelines",
		"/api/v1/client-types",
		"/api/v1/notifications",
	} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestRegister_FullLoginFlow(t *testing.T) {
	router := setupRouter(t)

	body := `{"email":"admin@barakatna.org","password":"password123","name":"Admin"}`
	req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(`{"email":"admin@barakatna.org","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// The first user is an admin and can reach admin routes.
	req, _ = http.NewRequest("GET", "/api/v1/backups", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// And can ingest and query audit records.
	record := `{"actor_id":"u1","actor_name":"Fatima Al-Sayed","action":"login","module":"auth","outcome":"success"}`
	req, _ = http.NewRequest("POST", "/api/v1/audit/records", bytes.NewBufferString(record))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("GET", "/api/v1/audit/records?module=auth", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fatima Al-Sayed")
}

func TestRegister_NonAdminBlockedFromAdminRoutes(t *testing.T) {
	router := setupRouter(t)

	register := func(email string) {
		body := `{"email":"` + email + `","password":"password123","name":"User"}`
		req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	register("admin@barakatna.org")
	register("worker@barakatna.org")

	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(`{"email":"worker@barakatna.org","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req, _ = http.NewRequest("POST", "/api/v1/backups", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
