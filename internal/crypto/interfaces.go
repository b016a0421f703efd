// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package crypto

// IdentifierCodec reversibly obfuscates plaintext case and user identifiers
// so that internal IDs are not exposed verbatim in shareable links.
//
// The codec is split into four composable primitives (encrypt/decrypt,
// encode/decode) rather than one black-box function: callers can validate a
// token's shape without committing to full decryption, and URL transport
// concerns stay decoupled from the cryptographic transform.
//
// This is an obfuscation layer, not an access-control boundary. It makes IDs
// opaque in the URL bar; authorization is enforced by the password session
// gate, not by the codec.
type IdentifierCodec interface {
	// Encrypt turns a non-empty plaintext identifier into an opaque
	// ciphertext string under the application-wide secret. Ciphertexts are
	// NOT stable: two encryptions of the same plaintext produce different
	// outputs. Errors wrap [ErrEncryption].
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Errors wrap [ErrDecryption] when the
	// ciphertext is malformed, was not produced by this codec, or decrypts
	// to an empty string.
	Decrypt(ciphertext string) (string, error)

	// EncodeForURL percent-encodes a value for safe embedding in a URL path
	// segment. Errors wrap [ErrURLEncoding].
	EncodeForURL(value string) (string, error)

	// DecodeFromURL reverses EncodeForURL. Errors wrap [ErrURLDecoding].
	DecodeFromURL(value string) (string, error)

	// EncryptAndEncodeID composes Encrypt then EncodeForURL.
	EncryptAndEncodeID(plaintext string) (string, error)

	// DecodeAndDecryptID composes DecodeFromURL then Decrypt. The first
	// failure encountered propagates, so a decoding error takes precedence
	// over a decryption error.
	DecodeAndDecryptID(token string) (string, error)

	// IsValidEncryptedID reports whether Decrypt would succeed on
	// ciphertext. Never returns an error.
	IsValidEncryptedID(ciphertext string) bool

	// IsValidEncodedEncryptedID reports whether DecodeFromURL followed by
	// Decrypt would succeed on token. Never returns an error.
	IsValidEncodedEncryptedID(token string) bool
}

// PasswordHasher derives and verifies portal password digests.
type PasswordHasher interface {
	// GeneratePasswordSalt returns a fresh random salt for hashing a
	// company's portal password.
	GeneratePasswordSalt() ([]byte, error)

	// HashPortalPassword derives the storable digest of a portal password
	// under the given salt. Deterministic for the same inputs.
	HashPortalPassword(password string, salt []byte) []byte

	// VerifyPortalPassword reports whether password hashes to digest under
	// salt, using a constant-time comparison.
	VerifyPortalPassword(password string, salt, digest []byte) bool
}
