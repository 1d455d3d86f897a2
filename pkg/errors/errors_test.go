package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("string")))
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsStorage(NewStorageError("flush", errors.New("disk full"))))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestWrapPreservesAppError(t *testing.T) {
	err := Wrap(NewNotFoundError("string"), "lookup failed")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "lookup failed")
	assert.Equal(t, http.StatusNotFound, GetAppError(err).HTTPStatus)
}

func TestWrapPlainErrorBecomesInternal(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, "while doing work")

	appErr := GetAppError(err)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}
