package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", ErrValidationFailed, http.StatusBadRequest},
		{"auth required", ErrAuthenticationRequired, http.StatusUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"inactive user", ErrInactiveUser, http.StatusUnauthorized},
		{"email conflict", ErrEmailExists, http.StatusConflict},
		{"cpf conflict", ErrCPFExists, http.StatusConflict},
		{"placa conflict", ErrPlacaExists, http.StatusConflict},
		{"tarefa not found", ErrTarefaNotFound, http.StatusNotFound},
		{"wrapped internal", WrapError(ErrInternal, errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"fmt wrapped domain", fmt.Errorf("ctx: %w", ErrCPFExists), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.err))
		})
	}
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	wrapped := WrapError(ErrInternal, errors.New("db down"))

	assert.True(t, errors.Is(wrapped, ErrInternal))
	assert.False(t, errors.Is(wrapped, ErrValidationFailed))
	assert.True(t, errors.Is(WithDetails(ErrValidationFailed, []string{"x"}), ErrValidationFailed))
}

func TestDomainError_UnwrapReachesCause(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := WrapError(ErrInternal, cause)

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, "Erro interno do servidor: connection refused", wrapped.Error())
}

func TestGetErrorDetails(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	internal := WrapError(ErrInternal, cause)

	assert.Equal(t, cause.Error(), GetErrorDetails(internal, true))
	assert.Nil(t, GetErrorDetails(internal, false))

	validation := WithDetails(ErrValidationFailed, []string{"email inválido"})
	assert.Equal(t, []string{"email inválido"}, GetErrorDetails(validation, false))

	assert.Nil(t, GetErrorDetails(ErrEmailExists, true))
	assert.Nil(t, GetErrorDetails(errors.New("raw"), false))
	assert.Equal(t, "raw", GetErrorDetails(errors.New("raw"), true))
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, "", GetErrorMessage(nil))
	assert.Equal(t, "Email ou senha incorretos", GetErrorMessage(ErrInvalidCredentials))
	assert.Equal(t, "plain", GetErrorMessage(errors.New("plain")))
}

func TestGetDomainError(t *testing.T) {
	assert.Nil(t, GetDomainError(errors.New("plain")))

	wrapped := fmt.Errorf("login: %w", WithDetails(ErrValidationFailed, []string{"senha é obrigatória"}))
	domainErr := GetDomainError(wrapped)
	if assert.NotNil(t, domainErr) {
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		assert.Equal(t, []string{"senha é obrigatória"}, domainErr.Details)
	}
}
