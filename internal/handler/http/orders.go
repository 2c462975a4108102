package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

const orderCreated = "order created"

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrMissingCredential)
		return
	}

	var request models.OrderRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.services.OrderService.PlaceOrder(ctx, principal.ID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.RecordOrderPlaced()
	logger.FromRequest(r).Debug().Int64("order_id", order.ID).Msg("order created")

	utils.WriteJSON(w, models.OrderCreatedResponse{Message: orderCreated, Order: order}, http.StatusOK)
}

func (h *Handler) orderSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		writeError(w, r, ErrMissingCredential)
		return
	}

	summary, err := h.services.OrderService.GetOrderSummary(ctx, principal.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
