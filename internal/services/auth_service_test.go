package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barakatna/platform/backend/internal/config"
	"github.com/barakatna/platform/backend/internal/models"
)

func setupAuthTestDB(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewAuthService(db, config.Config{JWTSecret: "test-secret"})
}

func TestAuthService_FirstUserBecomesAdmin(t *testing.T) {
	svc := setupAuthTestDB(t)

	first, err := svc.Register("admin@barakatna.org", "password123", "Admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := svc.Register("worker@barakatna.org", "password123", "Worker")
	require.NoError(t, err)
	assert.Equal(t, "user", second.Role)

	_, err = svc.Register("admin@barakatna.org", "password123", "Dupe")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_LoginAndTokenRoundTrip(t *testing.T) {
	svc := setupAuthTestDB(t)

	user, err := svc.Register("admin@barakatna.org", "password123", "Admin")
	require.NoError(t, err)

	token, err := svc.Login("admin@barakatna.org", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = svc.ValidateToken(token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_WrongPassword(t *testing.T) {
	svc := setupAuthTestDB(t)
	_, err := svc.Register("admin@barakatna.org", "password123", "Admin")
	require.NoError(t, err)

	_, err = svc.Login("admin@barakatna.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@barakatna.org", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LockoutAfterRepeatedFailures(t *testing.T) {
	svc := setupAuthTestDB(t)
	_, err := svc.Register("admin@barakatna.org", "password123", "Admin")
	require.NoError(t, err)

	for i := 0; i < maxFailedLogins; i++ {
		_, err = svc.Login("admin@barakatna.org", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Even the correct password is refused while locked.
	_, err = svc.Login("admin@barakatna.org", "password123")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestAuthService_RejectsTokenSignedWithWrongKey(t *testing.T) {
	svc := setupAuthTestDB(t)

	// A token minted with a different key (including the degenerate empty
	// key) must never validate, even with admin claims.
	for _, key := range [][]byte{[]byte(""), []byte("guessed-secret")} {
		claims := Claims{UserID: 1, Role: "admin"}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
		require.NoError(t, err)

		_, err = svc.ValidateToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := setupAuthTestDB(t)
	user, err := svc.Register("admin@barakatna.org", "password123", "Admin")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(user.ID, "wrong", "newpassword1"), ErrInvalidCredentials)
	require.NoError(t, svc.ChangePassword(user.ID, "password123", "newpassword1"))

	_, err = svc.Login("admin@barakatna.org", "newpassword1")
	assert.NoError(t, err)
}
