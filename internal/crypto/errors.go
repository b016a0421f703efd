// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package crypto

import "errors"

// Sentinel errors returned by the identifier codec. Callers should use
// [errors.Is] to match against these values; every error returned by the
// codec wraps exactly one of them, so encryption failures are always
// distinguishable from decryption failures and URL transport failures.
var (
	// ErrEncryption is returned when encrypting a plaintext identifier fails
	// (empty input, cipher construction failure, or nonce generation failure).
	ErrEncryption = errors.New("identifier encryption failed")

	// ErrDecryption is returned when a ciphertext cannot be decrypted: the
	// value is malformed, was not produced by this scheme, fails the GCM
	// authentication check, or decrypts to an empty string (an empty
	// identifier is a failure signal, never a valid result).
	ErrDecryption = errors.New("identifier decryption failed")

	// ErrURLEncoding is returned when percent-encoding a value for a URL
	// path segment fails. Practically unreachable for well-formed strings,
	// kept so callers can handle the full codec taxonomy uniformly.
	ErrURLEncoding = errors.New("identifier url encoding failed")

	// ErrURLDecoding is returned when a percent-encoded value contains
	// malformed escapes and cannot be decoded.
	ErrURLDecoding = errors.New("identifier url decoding failed")
)
