package dto

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// AuthClaims are the JWT claims carried by access tokens. Identity is
// compared against the configured admin marker on every mutation.
type AuthClaims struct {
	Identity  string `json:"identity"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
