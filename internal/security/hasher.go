// Package security provides the one-way password hash used for stored credentials.
package security

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"

	"studentapi/internal/config"
)

const keyLength = 64

// Hasher is a deterministic one-way password hash.
type Hasher interface {
	HashPassword(password string) string
	Verify(hash, password string) bool
}

var _ Hasher = (*Argon2Hasher)(nil)

// Argon2Hasher hashes password+complement with argon2id, using the complement as salt.
type Argon2Hasher struct {
	complement string
	time       uint32
	memoryKB   uint32
	threads    uint8
}

func NewArgon2Hasher(cfg config.SecurityConfig) *Argon2Hasher {
	h := &Argon2Hasher{
		complement: cfg.HashComplement,
		time:       cfg.ArgonTime,
		memoryKB:   cfg.ArgonMemoryKB,
		threads:    cfg.ArgonThreads,
	}
	if h.time == 0 {
		h.time = 1
	}
	if h.memoryKB == 0 {
		h.memoryKB = 19 * 1024
	}
	if h.threads == 0 {
		h.threads = 1
	}
	return h
}

// HashPassword returns the hex encoded digest of password.
func (h *Argon2Hasher) HashPassword(password string) string {
	key := argon2.IDKey([]byte(password+h.complement), []byte(h.complement), h.time, h.memoryKB, h.threads, keyLength)
	return hex.EncodeToString(key)
}

// Verify reports whether password hashes to hash, in constant time.
func (h *Argon2Hasher) Verify(hash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(h.HashPassword(password))) == 1
}
