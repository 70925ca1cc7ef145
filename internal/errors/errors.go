package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Payphone-Digital/transportadora/internal/constants"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Details any   // per-field detail for validation failures
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so wrapped copies still compare equal
// to the predefined values.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Details: domainErr.Details,
		Err:     err,
	}
}

// WithDetails returns a copy of the domain error carrying details
func WithDetails(domainErr *DomainError, details any) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Details: details,
		Err:     domainErr.Err,
	}
}

// Predefined domain errors
var (
	// Input
	ErrValidationFailed = NewDomainError("VALIDATION_FAILED", constants.MsgValidationFailed)

	// Authentication
	ErrAuthenticationRequired = NewDomainError("AUTHENTICATION_REQUIRED", constants.MsgTokenRequired)
	ErrInvalidCredentials     = NewDomainError("INVALID_CREDENTIALS", constants.MsgInvalidCredentials)
	ErrInvalidToken           = NewDomainError("INVALID_TOKEN", constants.MsgTokenInvalidGate)
	ErrInactiveUser           = NewDomainError("INACTIVE_USER", constants.MsgUserInactive)

	// Conflicts
	ErrEmailExists = NewDomainError("EMAIL_EXISTS", "Email já cadastrado")
	ErrCPFExists   = NewDomainError("CPF_EXISTS", "CPF já cadastrado")
	ErrCNHExists   = NewDomainError("CNH_EXISTS", "CNH já cadastrada")
	ErrPlacaExists = NewDomainError("PLACA_EXISTS", "Placa já cadastrada")
	ErrConflict    = NewDomainError("CONFLICT", "Registro já existe")

	// Not found
	ErrUserNotFound      = NewDomainError("USER_NOT_FOUND", "Usuário não encontrado")
	ErrTarefaNotFound    = NewDomainError("TAREFA_NOT_FOUND", "Tarefa não encontrada")
	ErrMotoristaNotFound = NewDomainError("MOTORISTA_NOT_FOUND", "Motorista não encontrado")
	ErrCaminhaoNotFound  = NewDomainError("CAMINHAO_NOT_FOUND", "Caminhão não encontrado")

	// System
	ErrInternal = NewDomainError("INTERNAL_ERROR", constants.MsgInternalError)
)

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain errors to HTTP status codes
// This should only be used in the handler/presentation layer
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	case "VALIDATION_FAILED":
		return http.StatusBadRequest

	// INVALID_TOKEN is 401 here; the access gate answers 403 on its own.
	case "AUTHENTICATION_REQUIRED", "INVALID_CREDENTIALS", "INVALID_TOKEN", "INACTIVE_USER":
		return http.StatusUnauthorized

	case "USER_NOT_FOUND", "TAREFA_NOT_FOUND", "MOTORISTA_NOT_FOUND", "CAMINHAO_NOT_FOUND":
		return http.StatusNotFound

	case "EMAIL_EXISTS", "CPF_EXISTS", "CNH_EXISTS", "PLACA_EXISTS", "CONFLICT":
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}

// GetErrorDetails returns what may be shown to clients under "details".
// Underlying causes of internal errors are only exposed when exposeInternal is set.
func GetErrorDetails(err error, exposeInternal bool) any {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		if exposeInternal && err != nil {
			return err.Error()
		}
		return nil
	}

	if domainErr.Details != nil {
		return domainErr.Details
	}

	if domainErr.Code == ErrInternal.Code && exposeInternal && domainErr.Err != nil {
		return domainErr.Err.Error()
	}

	return nil
}
