package utils

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/square/go-jose/v3"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenNotYetValid = errors.New("token is not valid yet")
	ErrMissingSubject   = errors.New("token has no subject")
)

// AccessTokenUtil decrypts NextAuth session tokens (JWE, dir + A256GCM).
type AccessTokenUtil struct {
	encryptionKey []byte
	now           func() time.Time
}

func NewAccessTokenUtil(secret string) (*AccessTokenUtil, error) {
	key, err := getDerivedEncryptionKey([]byte(secret), "")
	if err != nil {
		return nil, err
	}
	return &AccessTokenUtil{encryptionKey: key, now: time.Now}, nil
}

func (u *AccessTokenUtil) DecodeToken(token string) (map[string]any, error) {
	payload, err := decodeToken(token, u.encryptionKey)
	if err != nil {
		return nil, err
	}

	if err := validateClaims(payload, u.now()); err != nil {
		return nil, err
	}

	return payload, nil
}

// Subject returns the sub claim of a valid token.
func (u *AccessTokenUtil) Subject(token string) (string, error) {
	claims, err := u.DecodeToken(token)
	if err != nil {
		return "", err
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}

func getDerivedEncryptionKey(keyMaterial []byte, salt string) ([]byte, error) {
	info := []byte("NextAuth.js Generated Encryption Key")
	if salt != "" {
		info = []byte(fmt.Sprintf("NextAuth.js Generated Encryption Key (%s)", salt))
	}
	h := hkdf.New(sha256.New, keyMaterial, []byte(salt), info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeToken(tokenStr string, encryptionKey []byte) (map[string]any, error) {
	jweObject, err := jose.ParseEncrypted(tokenStr)
	if err != nil {
		return nil, err
	}
	decrypted, err := jweObject.Decrypt(encryptionKey)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(decrypted, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func validateClaims(payload map[string]any, now time.Time) error {
	unix := now.Unix()

	if exp, ok := payload["exp"].(float64); ok && unix > int64(exp) {
		return ErrTokenExpired
	}
	if iat, ok := payload["iat"].(float64); ok && unix < int64(iat) {
		return ErrTokenNotYetValid
	}

	return nil
}
