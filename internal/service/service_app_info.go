package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

type appInfoService struct {
	appVersion       string
	healthRepository store.HealthRepository

	logger *logger.Logger
}

func NewAppInfoService(healthRepository store.HealthRepository, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:       cfg.Version,
		healthRepository: healthRepository,
		logger:           logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) (models.PingResponse, error) {
	now, err := s.healthRepository.DatabaseTime(ctx)
	if err != nil {
		return models.PingResponse{}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return models.PingResponse{Message: "ok", Time: now}, nil
}
