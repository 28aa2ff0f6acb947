package storage

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Shared decks may carry an edit key: whoever knows it can delete the deck.
// Keys are hashed with Argon2id before storage; the stored form is
// "salt$hash", both base64.

const (
	editKeyTime    = 1
	editKeyMemory  = 64 * 1024 // 64 MB
	editKeyThreads = 4
	editKeyLen     = 32
	editKeySaltLen = 16
)

// HashEditKey derives the storable hash for an edit key.
func HashEditKey(key string) (string, error) {
	salt := make([]byte, editKeySaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(key), salt, editKeyTime, editKeyMemory, editKeyThreads, editKeyLen)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyEditKey reports whether key matches the stored hash.
func VerifyEditKey(key, stored string) bool {
	saltPart, hashPart, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltPart)
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(hashPart)
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(key), salt, editKeyTime, editKeyMemory, editKeyThreads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
