package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiErrError(t *testing.T) {
	err := NewBadRequestError("invalid postID")
	assert.Equal(t, "invalid postID", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	withDetails := NewInvalidFieldError("page", "must be 1 or greater")
	assert.Contains(t, withDetails.Error(), "page")
	assert.True(t, IsInvalidFieldError(withDetails))
}

func TestApiErrUnwrap(t *testing.T) {
	err := NewMissingRequiredFieldError("title")
	assert.True(t, errors.Is(err, ErrMissingRequiredField))
	assert.Equal(t, "title", err.Field)
}

func TestGetFullErrorIncludesCauses(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := NewDatabaseError("create", "post", cause)

	full := err.GetFullError()
	assert.Contains(t, full, "connection reset")
}

func TestNewDatabaseErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
	}{
		{"no documents", errors.New("mongo: no documents in result"), http.StatusNotFound},
		{"duplicate key", errors.New("E11000 duplicate key error"), http.StatusInternalServerError},
		{"server selection", errors.New("server selection error: context deadline exceeded"), http.StatusInternalServerError},
		{"connection reset", errors.New("connection reset by peer"), http.StatusInternalServerError},
		{"generic", errors.New("something broke"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "post", tt.cause)
			require.NotNil(t, err)
			assert.Equal(t, tt.status, err.StatusCode)
		})
	}
}

func TestNotFoundSentinel(t *testing.T) {
	err := NewNotFound("post")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "post not found", err.Error())
}
