package models

import "time"

type Tenant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	IDNumber     string    `json:"id_number"` // National ID / passport
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateTenantRequest represents the request body for registering a tenant
type CreateTenantRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
	Password string `json:"password"`
}

// UpdateTenantRequest represents the request body for updating a tenant
type UpdateTenantRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"id_number"`
}

// TenantLoginRequest is the portal login payload (phone + password)
type TenantLoginRequest struct {
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// TenantAuthResponse is returned after a successful portal login
type TenantAuthResponse struct {
	Token  string  `json:"token"`
	Tenant *Tenant `json:"tenant"`
}
