package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.ListCustomers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}

	utils.WriteJSON(w, models.DataResponse[models.Customer]{Data: customers}, http.StatusOK)
}
