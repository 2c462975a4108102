package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

type menuService struct {
	menuRepository store.MenuRepository
	logger         *logger.Logger
}

func NewMenuService(menuRepository store.MenuRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		logger:         logger,
	}
}

func (s *menuService) ListMenus(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menuRepository.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing menus ended with error: %w", err)
	}

	return items, nil
}
