// Package auth verifies tokens issued by the external auth service.
// This service never issues tokens itself; it only checks the signature
// against the auth service's published RSA public key and reads the role
// claims to gate the admin endpoints.
package auth

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey int

// ClaimsKey is the request context key under which verified claims are stored.
const ClaimsKey ctxKey = 1

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims is the token payload the external auth service signs.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// HasRole reports whether the claims grant the given role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Keys holds the verification key material.
type Keys struct {
	verifyKey *rsa.PublicKey
}

// NewKeys parses the PEM encoded RSA public key of the auth service.
func NewKeys(publicPEM []byte) (*Keys, error) {
	verifyKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parsing auth public key: %w", err)
	}
	return &Keys{verifyKey: verifyKey}, nil
}

// ValidateToken verifies the signature and standard claims of the token and
// returns the embedded claims.
func (k *Keys) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return k.verifyKey, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return Claims{}, fmt.Errorf("invalid token")
	}
	return claims, nil
}
