package models

import "github.com/golang-jwt/jwt/v5"

// TokenRequest carries the identity claims to embed in a session token.
// The server signs whatever identity the social-login client presents;
// there is no credential check behind this endpoint.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// TokenResponse returns the signed session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// JWTClaims is the session token payload.
type JWTClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
