// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisling/case-portal/models"
)

func validCase() models.Case {
	return models.Case{
		CaseID:      1,
		CompanyID:   1,
		Reference:   "ref-1",
		ReporterID:  100001,
		Title:       "missing safety gear",
		Description: "nobody on the night shift has been issued gloves",
		Status:      models.CaseStatusNew,
	}
}

func validMessage() models.CaseMessage {
	return models.CaseMessage{
		CaseID: 1,
		Author: models.MessageAuthorReporter,
		Body:   "any update on this?",
	}
}

func TestNewCaseValidator(t *testing.T) {
	v := NewCaseValidator()
	require.NotNil(t, v)
}

func TestCaseValidator_Validate_UnsupportedType(t *testing.T) {
	v := NewCaseValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCaseValidator_ValidateCase(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Case)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid case passes all default fields",
			mutate: func(c *models.Case) {},
		},
		{
			name:    "empty title",
			mutate:  func(c *models.Case) { c.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty description",
			mutate:  func(c *models.Case) { c.Description = "" },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "unknown status",
			mutate:  func(c *models.Case) { c.Status = "archived" },
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "field scoping skips unrelated fields",
			mutate:  func(c *models.Case) { c.Title = "" },
			fields:  []string{FieldStatus},
			wantErr: nil,
		},
		{
			name:    "zero case ID rejected when scoped",
			mutate:  func(c *models.Case) { c.CaseID = 0 },
			fields:  []string{FieldCaseID},
			wantErr: ErrInvalidCaseID,
		},
		{
			name:    "unknown field name",
			mutate:  func(c *models.Case) {},
			fields:  []string{"reporter_shoe_size"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewCaseValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCase()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCaseValidator_ValidateCase_Pointer(t *testing.T) {
	v := NewCaseValidator()
	c := validCase()

	assert.NoError(t, v.Validate(context.Background(), &c))
}

func TestCaseValidator_ValidateCaseMessage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *models.CaseMessage)
		wantErr error
	}{
		{
			name:   "valid message",
			mutate: func(m *models.CaseMessage) {},
		},
		{
			name:    "zero case ID",
			mutate:  func(m *models.CaseMessage) { m.CaseID = 0 },
			wantErr: ErrInvalidCaseID,
		},
		{
			name:    "unknown author",
			mutate:  func(m *models.CaseMessage) { m.Author = "lawyer" },
			wantErr: ErrUnknownAuthor,
		},
		{
			name:    "empty body",
			mutate:  func(m *models.CaseMessage) { m.Body = "" },
			wantErr: ErrEmptyMessageBody,
		},
	}

	v := NewCaseValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(&m)

			err := v.Validate(context.Background(), m)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
