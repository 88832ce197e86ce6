package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/bankcore/pkg/domain"
	"github.com/amirasaad/bankcore/pkg/domain/account"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// Traverses the error chain to find GORM errors and maps them to appropriate domain errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	// Return original error if no mapping found
	return err
}

// WrapError runs a GORM operation and classifies its error for callers of the store:
// account rule violations pass through, GORM errors become domain errors and anything else
// is reported as domain.ErrStoreUnavailable wrapping the driver error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return s.db.WithContext(ctx).Create(&entry).Error
//	})
func WrapError(op func() error) error {
	err := op()
	if err == nil {
		return nil
	}
	if errors.Is(err, account.ErrInsufficientFunds) || errors.Is(err, account.ErrNoCredit) {
		return err
	}
	if mapped := MapGormErrorToDomain(err); errors.Is(mapped, domain.ErrNotFound) ||
		errors.Is(mapped, domain.ErrAlreadyExists) {
		return mapped
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
