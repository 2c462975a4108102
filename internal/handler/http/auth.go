package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/metrics"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

const registrationSuccessful = "registration successful"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := h.services.AuthService.RegisterCustomer(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", customer.ID).Msg("customer successfully registered")
	utils.WriteMessage(w, registrationSuccessful, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.metrics.RecordLogin(metrics.LoginInvalidCredentials)
		case statusFromError(err) >= http.StatusInternalServerError:
			h.metrics.RecordLogin(metrics.LoginError)
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, customer)
	if err != nil {
		h.metrics.RecordLogin(metrics.LoginError)
		writeError(w, r, err)
		return
	}

	h.metrics.RecordLogin(metrics.LoginSuccess)
	log.Debug().Int64("id", customer.ID).Msg("customer successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("%s %s", utils.BearerScheme, token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
