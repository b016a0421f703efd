// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context and type-safe keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ReporterIDCtxKey is the key used to store the decrypted reporter (user)
// identifier in the context. Set by the access-guard middleware after it has
// decoded the URL's encrypted user segment.
var ReporterIDCtxKey = contextKey("reporterID")

// CaseIDCtxKey is the key used to store the decrypted case identifier in the
// context. Set by the access-guard middleware after it has decoded the URL's
// encrypted case segment.
var CaseIDCtxKey = contextKey("caseID")

// GetReporterIDFromContext retrieves the decrypted reporter identifier from
// the context.
//
// Returns the plaintext identifier and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetReporterIDFromContext(ctx context.Context) (string, bool) {
	reporterID, ok := ctx.Value(ReporterIDCtxKey).(string)
	return reporterID, ok
}

// GetCaseIDFromContext retrieves the decrypted case identifier from the
// context.
//
// Returns the plaintext identifier and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetCaseIDFromContext(ctx context.Context) (string, bool) {
	caseID, ok := ctx.Value(CaseIDCtxKey).(string)
	return caseID, ok
}
