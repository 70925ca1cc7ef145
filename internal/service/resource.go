package service

import (
	"errors"

	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/repository"
	"gorm.io/gorm"
)

// storeError maps store failures onto domain errors for one resource
func storeError(err error, notFound *apperrors.DomainError) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var uv *repository.UniqueViolation
	if errors.As(err, &uv) {
		return conflictFor(uv.Field)
	}

	return apperrors.WrapError(apperrors.ErrInternal, err)
}
