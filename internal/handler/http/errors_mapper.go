package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrMenuNotFound:        http.StatusBadRequest,

	ErrMissingCredential:               http.StatusUnauthorized,
	ErrMalformedCredential:             http.StatusUnauthorized,
	ErrInvalidOrExpiredCredential:      http.StatusUnauthorized,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrCustomerNoLongerExists:  http.StatusUnauthorized,

	service.ErrUsernameTaken: http.StatusConflict,
}

const internalErrorMessage = "internal server error"

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes {"message": ...}. Server-side
// failures are logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		utils.WriteMessage(w, internalErrorMessage, status)
		return
	}

	logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, err.Error(), status)
}
