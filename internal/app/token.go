package app

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"evidencias/internal/domain"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/nacl/secretbox"
)

// DecodeIdentity extracts the identity claims from the upstream token. The
// signature is not verified here: the token was issued and validated by the
// remote API, and this app only reads the claims for display and gating.
func DecodeIdentity(rawToken string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &domain.Identity{
		UserID:   intClaim(claims, "userId"),
		RoleID:   intClaim(claims, "roleId"),
		RoleName: stringClaim(claims, "roleName"),
		Nombre:   stringClaim(claims, "name"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}
	return ""
}

func intClaim(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

const nonceSize = 24

// sealToken encrypts the upstream token for storage.
func sealToken(key *[32]byte, raw string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(raw), &nonce, key)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// openToken decrypts a token sealed by sealToken.
func openToken(key *[32]byte, sealed string) (string, error) {
	b, err := base64.URLEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	if len(b) < nonceSize {
		return "", errors.New("sealed token too short")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], b[:nonceSize])
	raw, ok := secretbox.Open(nil, b[nonceSize:], &nonce, key)
	if !ok {
		return "", errors.New("sealed token corrupt or key mismatch")
	}
	return string(raw), nil
}

// generateSessionID returns a random URL-safe session identifier.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
