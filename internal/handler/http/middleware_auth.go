package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/metrics"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

// auth is the authorization gate in front of protected routes.
//
// It resolves every request to exactly one outcome, checked in order:
//   - no or empty "Authorization" header: [ErrMissingCredential];
//   - header not exactly "Bearer <token>": [ErrMalformedCredential];
//   - token rejected by [service.AuthService.ParseToken] for any reason:
//     [ErrInvalidOrExpiredCredential].
//
// Each rejection is a 401 with its own message. On success the principal
// is stored in the request context under [utils.PrincipalCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Values("Authorization")
		if len(authHeader) == 0 || authHeader[0] == "" {
			h.reject(w, r, metrics.GateMissingCredential, ErrMissingCredential)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader[0])
		if err != nil || len(authHeader) > 1 {
			h.reject(w, r, metrics.GateMalformedCredential, ErrMalformedCredential)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			// the precise reason stays in the server log
			log.Debug().Err(err).Msg("token rejected")
			h.reject(w, r, metrics.GateInvalidOrExpiredCredential, ErrInvalidOrExpiredCredential)
			return
		}

		h.metrics.RecordGate(metrics.GateAuthenticated)
		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, outcome string, err error) {
	h.metrics.RecordGate(outcome)
	writeError(w, r, err)
}
