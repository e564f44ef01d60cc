package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakatna/platform/backend/internal/config"
	"github.com/barakatna/platform/backend/internal/models"
	"github.com/barakatna/platform/backend/internal/services"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := OpenTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authService := services.NewAuthService(db, config.Config{JWTSecret: "test-secret"})
	h := NewAuthHandler(authService, false)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/auth/register", `{"email":"admin@barakatna.org","password":"password123","name":"Admin"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email conflicts.
	w = postJSON(r, "/auth/register", `{"email":"admin@barakatna.org","password":"password123","name":"Again"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(r, "/auth/login", `{"email":"admin@barakatna.org","password":"password123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/auth/login", `{"email":"nobody@barakatna.org","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Missing fields are a bad request.
	w = postJSON(r, "/auth/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(r, "/auth/logout", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
