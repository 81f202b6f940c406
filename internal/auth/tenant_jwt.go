package auth

import (
	"errors"
	"time"

	"estate-backend/internal/models"
	"estate-backend/internal/timeutil"

	"github.com/golang-jwt/jwt/v5"
)

// TenantClaims represents JWT claims for tenant portal authentication
type TenantClaims struct {
	TenantID int    `json:"tenant_id"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	IsTenant bool   `json:"is_tenant"`
	jwt.RegisteredClaims
}

// GenerateTenantToken creates a new JWT token for a tenant
func (j *JWTManager) GenerateTenantToken(tenant *models.Tenant, rememberMe bool) (string, error) {
	now := timeutil.Now()
	var expirationTime time.Time

	if rememberMe {
		// 30 days for "Remember Me"
		expirationTime = now.Add(30 * 24 * time.Hour)
	} else {
		expirationTime = now.Add(24 * time.Hour)
	}

	claims := &TenantClaims{
		TenantID: tenant.ID,
		Phone:    tenant.Phone,
		Name:     tenant.Name,
		IsTenant: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.cfg.JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.JWT.Secret))
}

// ValidateTenantToken verifies a tenant JWT token and returns the claims
func (j *JWTManager) ValidateTenantToken(tokenString string) (*TenantClaims, error) {
	claims := &TenantClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Security check: a staff token must never pass as a tenant token
	if !claims.IsTenant {
		return nil, errors.New("not a tenant token")
	}

	return claims, nil
}
