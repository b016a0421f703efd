// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

// Package crypto implements the identifier codec and the portal password
// hasher of the case-portal application.
//
// The identifier codec obfuscates internal case and user IDs so that
// shareable case-follow-up links carry opaque tokens instead of raw numeric
// identifiers. The password hasher derives the Argon2id digests that portal
// passwords are stored and verified against.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
)

// identifierCodec is the private implementation of [IdentifierCodec].
// It encrypts identifiers with AES-256-GCM under a key derived from a single
// application-wide secret string.
type identifierCodec struct {
	// key is the 256-bit AES key: SHA-256 of the configured secret string.
	key [32]byte
}

// NewIdentifierCodec constructs an [IdentifierCodec] keyed by secret.
// The same secret must be used for the lifetime of a deployment — tokens
// minted under one secret do not decrypt under another.
func NewIdentifierCodec(secret string) IdentifierCodec {
	return &identifierCodec{key: sha256.Sum256([]byte(secret))}
}

// Encrypt implements [IdentifierCodec]. The output is a Base64 (standard
// encoding) string of the blob: nonce (12 bytes) ‖ ciphertext. The nonce is
// random per call, so ciphertexts for the same plaintext differ between
// calls; callers must not rely on byte-for-byte ciphertext equality.
func (c *identifierCodec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: empty plaintext identifier", ErrEncryption)
	}

	gcm, err := c.aead()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	// Prepend the nonce so Decrypt can split it out again.
	blob := gcm.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [IdentifierCodec]. It Base64-decodes ciphertext, splits
// out the nonce, and decrypts the remainder with AES-256-GCM. A recovered
// empty string is treated as a failure signal, not a valid empty identifier.
func (c *identifierCodec) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	gcm, err := c.aead()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	// An error here means the token was tampered with or was minted under a
	// different secret (authentication-tag mismatch).
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	if len(plaintext) == 0 {
		return "", fmt.Errorf("%w: decrypted to empty identifier", ErrDecryption)
	}

	return string(plaintext), nil
}

// EncodeForURL implements [IdentifierCodec]. It percent-encodes value for
// safe embedding in a URL path segment. The standard library escaper cannot
// fail for well-formed strings; the error return keeps the codec taxonomy
// uniform for callers.
func (c *identifierCodec) EncodeForURL(value string) (string, error) {
	encoded := url.QueryEscape(value)
	if encoded == "" && value != "" {
		return "", fmt.Errorf("%w: escaped %q to empty string", ErrURLEncoding, value)
	}

	return encoded, nil
}

// DecodeFromURL implements [IdentifierCodec]. It percent-decodes value,
// failing on malformed escapes.
func (c *identifierCodec) DecodeFromURL(value string) (string, error) {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrURLDecoding, err)
	}

	return decoded, nil
}

// EncryptAndEncodeID implements [IdentifierCodec].
func (c *identifierCodec) EncryptAndEncodeID(plaintext string) (string, error) {
	ciphertext, err := c.Encrypt(plaintext)
	if err != nil {
		return "", err
	}

	return c.EncodeForURL(ciphertext)
}

// DecodeAndDecryptID implements [IdentifierCodec]. Decoding runs first, so
// its error takes precedence over a decryption error.
func (c *identifierCodec) DecodeAndDecryptID(token string) (string, error) {
	ciphertext, err := c.DecodeFromURL(token)
	if err != nil {
		return "", err
	}

	return c.Decrypt(ciphertext)
}

// IsValidEncryptedID implements [IdentifierCodec].
func (c *identifierCodec) IsValidEncryptedID(ciphertext string) bool {
	_, err := c.Decrypt(ciphertext)
	return err == nil
}

// IsValidEncodedEncryptedID implements [IdentifierCodec].
func (c *identifierCodec) IsValidEncodedEncryptedID(token string) bool {
	_, err := c.DecodeAndDecryptID(token)
	return err == nil
}

// aead builds the AES-256-GCM cipher from the derived key.
func (c *identifierCodec) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
