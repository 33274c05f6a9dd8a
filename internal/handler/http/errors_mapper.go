package http

import (
	"errors"
	"net/http"

	"github.com/dkuznetsov/legacy-keeper/internal/credstore"
	"github.com/dkuznetsov/legacy-keeper/internal/service"
	"github.com/dkuznetsov/legacy-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmptyContent:            http.StatusBadRequest,
	service.ErrEmptyFilename:           http.StatusBadRequest,
	service.ErrAuthenticationFailed:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrExternalService:         http.StatusBadGateway,
	service.ErrAssetFileMissing:        http.StatusNotFound,

	credstore.ErrDuplicateUsername: http.StatusConflict,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrAssetNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
