package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

func (h *Handler) listMenus(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.MenuService.ListMenus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	utils.WriteJSON(w, models.DataResponse[models.MenuItem]{Data: items}, http.StatusOK)
}
