package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("product", "42")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "product")
	assert.Contains(t, err.Message, "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("price must not be negative")

	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "save cart")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save cart: connection refused", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrConflict))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unknown")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("version mismatch")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(Wrap(ErrNotFound, "get order")))
}
