package handler

import (
	"errors"
	"net/http"

	"github.com/rbdtech/afc-portal-api/internal/repository"
	apperrors "github.com/rbdtech/afc-portal-api/pkg/errors"
)

// ErrorStatus maps service and store errors to HTTP statuses so
// handlers surface not-found and bad-request explicitly instead of a
// blanket 500.
func ErrorStatus(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrNotFound:
			return http.StatusNotFound
		case apperrors.ErrBadRequest:
			return http.StatusBadRequest
		case apperrors.ErrUnauthorized:
			return http.StatusUnauthorized
		case apperrors.ErrForbidden:
			return http.StatusForbidden
		}
	}
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
