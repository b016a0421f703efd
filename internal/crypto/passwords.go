// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/argon2"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - digest size: 32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GeneratePasswordSalt implements [PasswordHasher]. It reads 16 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (p *passwordHasher) GeneratePasswordSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPortalPassword implements [PasswordHasher]. It derives a 256-bit
// Argon2id digest of password under salt using the parameters stored in the
// receiver. The same password and salt always produce the same digest.
func (p *passwordHasher) HashPortalPassword(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		p.argonTime,
		p.argonMemory,
		p.argonThreads,
		p.argonKeyLen,
	)
}

// VerifyPortalPassword implements [PasswordHasher]. The comparison runs in
// constant time so verification does not leak how many digest bytes matched.
func (p *passwordHasher) VerifyPortalPassword(password string, salt, digest []byte) bool {
	candidate := p.HashPortalPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}
