// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package validators

import (
	"context"
	"fmt"

	"github.com/wisling/case-portal/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldTitle targets the short summary line of a submitted case.
	FieldTitle = "title"

	// FieldDescription targets the free-form report text of a case.
	FieldDescription = "description"

	// FieldStatus targets the lifecycle status of a case.
	FieldStatus = "status"

	// FieldCaseID targets the numeric database identifier of a case.
	FieldCaseID = "case_id"

	// FieldAuthor targets the author role of a case message.
	FieldAuthor = "author"

	// FieldBody targets the text body of a case message.
	FieldBody = "body"
)

type CaseValidator struct {
}

func NewCaseValidator() Validator {
	return &CaseValidator{}
}

func (v *CaseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Case:
		return v.validateCase(ctx, value, fields...)
	case *models.Case:
		return v.validateCase(ctx, *value, fields...)

	case models.CaseMessage:
		return v.validateCaseMessage(ctx, value, fields...)
	case *models.CaseMessage:
		return v.validateCaseMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CaseValidator) validateCase(_ context.Context, c models.Case, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if c.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if c.Description == "" {
				return ErrEmptyDescription
			}
		case FieldStatus:
			if !c.Status.IsKnown() {
				return ErrInvalidStatus
			}
		case FieldCaseID:
			if c.CaseID <= 0 {
				return ErrInvalidCaseID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CaseValidator) validateCaseMessage(_ context.Context, m models.CaseMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCaseID, FieldAuthor, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldCaseID:
			if m.CaseID <= 0 {
				return ErrInvalidCaseID
			}
		case FieldAuthor:
			if !m.Author.IsKnown() {
				return ErrUnknownAuthor
			}
		case FieldBody:
			if m.Body == "" {
				return ErrEmptyMessageBody
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
