package http

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/assert"
)

func TestListCustomers(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	customers := &fakeCustomerService{
		listFn: func(context.Context) ([]models.Customer, error) {
			return []models.Customer{{ID: 1, Username: "alice", PasswordHash: "digest", Fullname: "Alice", CreatedAt: created}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{CustomerService: customers})

	t.Run("authorized", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/customers", nil, bearer(validToken))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[{"id":1,"username":"alice","fullname":"Alice","address":"","phone":"","email":"","created_at":"2026-01-02T03:04:05Z"}]}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "digest")
	})

	t.Run("unauthorized", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/customers", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListCustomers_Empty(t *testing.T) {
	customers := &fakeCustomerService{
		listFn: func(context.Context) ([]models.Customer, error) { return nil, nil },
	}
	h := newTestHandler(t, &service.Services{CustomerService: customers})

	rec := serve(t, h, http.MethodGet, "/customers", nil, bearer(validToken))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListMenus(t *testing.T) {
	menus := &fakeMenuService{
		listFn: func(context.Context) ([]models.MenuItem, error) {
			return []models.MenuItem{{
				MenuID:   1,
				MenuName: "Pad Thai",
				Price:    60,
				Category: "noodles",
				Restaurant: models.Restaurant{
					ID:   2,
					Name: "Thip Samai",
				},
			}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MenuService: menus})

	rec := serve(t, h, http.MethodGet, "/menus", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{
		"menu_id":1,"menu_name":"Pad Thai","menu_description":"","price":60,"category":"noodles",
		"restaurant_id":2,"restaurant_name":"Thip Samai","restaurant_address":"","restaurant_phone":"",
		"restaurant_menu_description":""
	}]}`, rec.Body.String())
}

func TestListMenus_Error(t *testing.T) {
	menus := &fakeMenuService{
		listFn: func(context.Context) ([]models.MenuItem, error) { return nil, errors.New("timeout") },
	}
	h := newTestHandler(t, &service.Services{MenuService: menus})

	rec := serve(t, h, http.MethodGet, "/menus", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, decodeMessage(t, rec))
}
