// Package auth implements the admin portal authentication: bcrypt password
// verification and HS256 bearer tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Config carries the single admin identity, sourced from the environment. The
// password is stored only as a bcrypt hash.
type Config struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	SecretKey    string `envconfig:"ADMIN_SECRET_KEY"`
	TokenTTLMin  int    `envconfig:"ADMIN_TOKEN_TTL_MINUTES" default:"60"`
}

// TokenResponse is the login payload returned to the admin UI.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
}

// Authenticator issues and verifies admin tokens.
type Authenticator struct {
	cfg      Config
	tokenTTL time.Duration
}

// NewAuthenticator builds an authenticator from configuration.
func NewAuthenticator(cfg Config) *Authenticator {
	return &Authenticator{
		cfg:      cfg,
		tokenTTL: time.Duration(cfg.TokenTTLMin) * time.Minute,
	}
}

// Login verifies the credentials and returns a signed bearer token.
func (a *Authenticator) Login(username, password string) (TokenResponse, error) {
	if username != a.cfg.Username || a.cfg.PasswordHash == "" {
		return TokenResponse{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.cfg.SecretKey))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int(a.tokenTTL.Seconds()),
	}, nil
}

// VerifyToken validates a bearer token and returns the admin username.
func (a *Authenticator) VerifyToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(a.cfg.SecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != a.cfg.Username {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// HashPassword generates a bcrypt hash for initial admin setup.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
