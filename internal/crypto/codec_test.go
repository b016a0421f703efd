// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestEncrypt_RoundTrip(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	for _, plaintext := range []string{"1", "42", "9007199254740993", "user-abc"} {
		ciphertext, err := codec.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}
		if ciphertext == plaintext {
			t.Fatalf("ciphertext equals plaintext for %q", plaintext)
		}

		recovered, err := codec.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if recovered != plaintext {
			t.Fatalf("round trip: got %q, want %q", recovered, plaintext)
		}
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	c1, err := codec.Encrypt("123")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	c2, err := codec.Encrypt("123")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if c1 == c2 {
		t.Fatalf("expected distinct ciphertexts for repeated encryptions, got identical")
	}

	// both must still decrypt to the original
	for _, c := range []string{c1, c2} {
		got, err := codec.Decrypt(c)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != "123" {
			t.Fatalf("Decrypt = %q, want %q", got, "123")
		}
	}
}

func TestEncrypt_EmptyPlaintext(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	if _, err := codec.Encrypt(""); !errors.Is(err, ErrEncryption) {
		t.Fatalf("expected ErrEncryption for empty plaintext, got %v", err)
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	ciphertext, err := codec.Encrypt("777")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// flip one character somewhere in the middle of the token
	mid := len(ciphertext) / 2
	flipped := byte('A')
	if ciphertext[mid] == 'A' {
		flipped = 'B'
	}
	tampered := ciphertext[:mid] + string(flipped) + ciphertext[mid+1:]

	if _, err := codec.Decrypt(tampered); !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption for tampered token, got %v", err)
	}
}

func TestDecrypt_WrongSecret(t *testing.T) {
	minter := NewIdentifierCodec("secret-one")
	other := NewIdentifierCodec("secret-two")

	ciphertext, err := minter.Encrypt("42")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := other.Decrypt(ciphertext); !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption under wrong secret, got %v", err)
	}
}

func TestDecrypt_GarbageInputs(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	for _, input := range []string{"", "not base64 at all!!!", "AAAA", "YQ=="} {
		if _, err := codec.Decrypt(input); !errors.Is(err, ErrDecryption) {
			t.Fatalf("Decrypt(%q): expected ErrDecryption, got %v", input, err)
		}
	}
}

func TestEncodeForURL_RoundTrip(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	// base64 standard alphabet includes '+' and '/', both of which must
	// survive a URL round trip
	value := "ab+cd/ef=="

	encoded, err := codec.EncodeForURL(value)
	if err != nil {
		t.Fatalf("EncodeForURL error: %v", err)
	}
	if strings.ContainsAny(encoded, "+/") {
		t.Fatalf("encoded value %q still contains unescaped base64 characters", encoded)
	}

	decoded, err := codec.DecodeFromURL(encoded)
	if err != nil {
		t.Fatalf("DecodeFromURL error: %v", err)
	}
	if decoded != value {
		t.Fatalf("URL round trip: got %q, want %q", decoded, value)
	}
}

func TestDecodeFromURL_MalformedEscape(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	if _, err := codec.DecodeFromURL("%zz"); !errors.Is(err, ErrURLDecoding) {
		t.Fatalf("expected ErrURLDecoding, got %v", err)
	}
}

func TestEncryptAndEncodeID_FullPath(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	token, err := codec.EncryptAndEncodeID("314159")
	if err != nil {
		t.Fatalf("EncryptAndEncodeID error: %v", err)
	}

	got, err := codec.DecodeAndDecryptID(token)
	if err != nil {
		t.Fatalf("DecodeAndDecryptID error: %v", err)
	}
	if got != "314159" {
		t.Fatalf("full path round trip: got %q, want %q", got, "314159")
	}
}

func TestDecodeAndDecryptID_DecodeErrorTakesPrecedence(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	_, err := codec.DecodeAndDecryptID("%%%")
	if !errors.Is(err, ErrURLDecoding) {
		t.Fatalf("expected ErrURLDecoding, got %v", err)
	}
	if errors.Is(err, ErrDecryption) {
		t.Fatalf("decryption error must not mask the decoding error")
	}
}

func TestValidators_NeverPanic(t *testing.T) {
	codec := NewIdentifierCodec("unit-test-secret")

	good, err := codec.EncryptAndEncodeID("5")
	if err != nil {
		t.Fatalf("EncryptAndEncodeID error: %v", err)
	}

	checks := []struct {
		token string
		want  bool
	}{
		{good, true},
		{"", false},
		{"%%%", false},
		{"completely-bogus", false},
	}

	for _, c := range checks {
		if got := codec.IsValidEncodedEncryptedID(c.token); got != c.want {
			t.Errorf("IsValidEncodedEncryptedID(%q) = %v, want %v", c.token, got, c.want)
		}
	}

	raw, err := codec.Encrypt("5")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if !codec.IsValidEncryptedID(raw) {
		t.Errorf("IsValidEncryptedID rejected a freshly minted ciphertext")
	}
	if codec.IsValidEncryptedID("junk") {
		t.Errorf("IsValidEncryptedID accepted junk")
	}
}
