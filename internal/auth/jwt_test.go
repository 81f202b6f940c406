package auth

import (
	"testing"

	"estate-backend/internal/config"
	"estate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-not-for-production"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "estate-backend-test"
	return NewJWTManager(cfg)
}

func TestStaffToken_RoundTrip(t *testing.T) {
	m := testManager()
	user := &models.User{ID: 42, Email: "agent@estate.local", Role: "agent", IsActive: true}

	token, err := m.GenerateToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "agent@estate.local", claims.Email)
	assert.Equal(t, "agent", claims.Role)
	assert.True(t, claims.IsActive)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m := testManager()
	token, err := m.GenerateToken(&models.User{ID: 1, Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	other := testManager()
	other.cfg.JWT.Secret = "a-different-secret"
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	m := testManager()
	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTenantToken_RoundTrip(t *testing.T) {
	m := testManager()
	tenant := &models.Tenant{ID: 7, Phone: "600111222", Name: "Maria"}

	token, err := m.GenerateTenantToken(tenant, false)
	require.NoError(t, err)

	claims, err := m.ValidateTenantToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.TenantID)
	assert.Equal(t, "600111222", claims.Phone)
	assert.True(t, claims.IsTenant)
}

func TestStaffTokenRejectedAsTenantToken(t *testing.T) {
	m := testManager()
	token, err := m.GenerateToken(&models.User{ID: 1, Email: "admin@estate.local", Role: "admin"})
	require.NoError(t, err)

	// A staff token parses with the same secret but must fail the IsTenant check
	_, err = m.ValidateTenantToken(token)
	assert.Error(t, err)
}

func TestTempToken_TypeEnforced(t *testing.T) {
	m := testManager()
	user := &models.User{ID: 3, Email: "twofa@estate.local"}

	temp, err := m.GenerateTempToken(user)
	require.NoError(t, err)

	claims, err := m.ValidateTempToken(temp)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "2fa_pending", claims.Type)

	// A full staff token must not pass as a temp token
	full, err := m.GenerateToken(user)
	require.NoError(t, err)
	_, err = m.ValidateTempToken(full)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
	assert.False(t, VerifyPassword("", "anything"))
}
