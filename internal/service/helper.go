package service

import (
	"errors"

	"github.com/smartcampus-id/campus-backend/pkg/apperror"
	"gorm.io/gorm"
)

// notFoundOr translates a gorm record-not-found into the domain
// not-found error; any other store error passes through unchanged.
func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(resource, id)
	}
	return err
}
