package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashRefreshToken generates a SHA256 hash of a refresh token. Refresh and
// service tokens are high-entropy random strings, so a plain hash (no salt,
// no bcrypt) is sufficient and keeps lookups cheap.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw token string with its stored SHA256 hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}

// JoinRefreshTokenCookie builds the refresh cookie value "userID.token". The
// user ID prefix lets the refresh endpoint locate the stored hash; raw tokens
// are hex encoded so "." never collides.
func JoinRefreshTokenCookie(userID, token string) string {
	return userID + "." + token
}

// SplitRefreshTokenCookie splits a refresh cookie value into user ID and raw token.
func SplitRefreshTokenCookie(value string) (userID string, token string, ok bool) {
	userID, token, ok = strings.Cut(value, ".")
	if !ok || userID == "" || token == "" {
		return "", "", false
	}
	return userID, token, true
}
