// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "license_unknown_error",
			code:    errors.ErrLicenseUnknown,
			message: "license FOO is not known",
			wantStr: "[LICENSE_UNKNOWN] license FOO is not known",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "user is required",
			wantStr: "[INVALID_INPUT] user is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.Equal(t, tt.code, err.Code)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.Wrap(cause, errors.ErrFileWrite, "writing README.md")

	require.NotNil(t, err)
	assert.Equal(t, "[FILE_WRITE] writing README.md: disk full", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileWrite, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrTemplateNotFound, "template %s does not exist", "travis.yml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.False(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrTemplateNotFound))

	// Codes survive wrapping in plain fmt errors.
	wrapped := errors.Wrap(err, errors.ErrConfigValid, "constructing template")
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigValid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrHostInvalid, errors.GetErrorCode(errors.New(errors.ErrHostInvalid, "bad host")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLicenseUnknown, "unknown license").
		WithDetail("license", "WTFPL")
	assert.Equal(t, "WTFPL", err.Details["license"])
}
