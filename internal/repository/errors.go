package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

// ErrConstraintViolation matches any *UniqueViolation through errors.Is
var ErrConstraintViolation = errors.New("unique constraint violation")

// UniqueViolation reports which field a unique index rejected.
type UniqueViolation struct {
	Field      string
	Constraint string
	Err        error
}

func (e *UniqueViolation) Error() string {
	return fmt.Sprintf("unique constraint violation on %s (%s)", e.Field, e.Constraint)
}

func (e *UniqueViolation) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *UniqueViolation) Unwrap() error {
	return e.Err
}

var constraintFields = map[string]string{
	"idx_users_email":     "email",
	"idx_users_cpf":       "cpf",
	"idx_motoristas_cpf":  "cpf",
	"idx_motoristas_cnh":  "cnh",
	"idx_caminhoes_placa": "placa",
}

// classifyError turns a PostgreSQL unique violation into *UniqueViolation
// and returns every other error unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}

	return &UniqueViolation{
		Field:      fieldFromConstraint(pgErr.ConstraintName),
		Constraint: pgErr.ConstraintName,
		Err:        err,
	}
}

// fieldFromConstraint knows the indexes this service creates and falls back
// to the last segment of names like users_email_key.
func fieldFromConstraint(name string) string {
	if field, ok := constraintFields[name]; ok {
		return field
	}

	trimmed := strings.TrimSuffix(name, "_key")
	if i := strings.LastIndex(trimmed, "_"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
