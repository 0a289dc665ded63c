package valueobjects

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Token is a one-time secret mailed to the user. Only its SHA-256 hash is
// persisted.
type Token struct {
	value string
	hash  string
}

func GenerateToken() (*Token, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	value := hex.EncodeToString(buf)
	return &Token{value: value, hash: HashToken(value)}, nil
}

func (t *Token) Value() string { return t.value }
func (t *Token) Hash() string  { return t.hash }

func HashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// MatchesHash compares plain against a stored hash in constant time.
func MatchesHash(plain, storedHash string) bool {
	if plain == "" || storedHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashToken(plain)), []byte(storedHash)) == 1
}
