package model

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest is the body for POST /v1/auth/register.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	ClassLevel string `json:"classLevel"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	ClassLevel string `json:"classLevel"`
}

// StudentClaims is the JWT payload for an authenticated student.
type StudentClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
