// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides token verification for the external identity provider.
//
// # Architecture
//
// Readalong does not mint or store credentials. Readers authenticate against
// an external provider which issues RS256 JWTs; this package verifies those
// tokens with the provider's public key and exposes the claims as the
// reader's identity. It is injected into the middleware layer via the
// [middleware.TokenVerifier] interface.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside an identity-provider token.
//
// # Why custom claims?
//
// By embedding the reader's email and role directly inside the JWT,
// [middleware.Authenticate] can reconstruct the active reader context
// WITHOUT querying the provider on every single API request. The email is
// the stable, opaque reader identity used to key ledger entries and
// progress snapshots.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	Email string `json:"eml"`
	Role  string `json:"rol"`
}

// TokenVerifier validates RS256 tokens issued by the identity provider.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenVerifier creates a new TokenVerifier.
// It reads the provider's RSA public key from the given filesystem path.
func NewTokenVerifier(publicKeyPath, issuer string) (*TokenVerifier, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenVerifier{
		publicKey: publicKey,
		issuer:    issuer,
	}, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (verifier *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return verifier.publicKey, nil
	}, jwt.WithIssuer(verifier.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
