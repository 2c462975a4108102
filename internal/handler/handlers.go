package handler

import (
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/handler/http"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/metrics"
	"github.com/MKhiriev/go-food-order/internal/service"
)

type Handlers struct {
	HTTP    *http.Handler
	Metrics *metrics.Metrics
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	m := metrics.New()

	return &Handlers{
		HTTP:    http.NewHandler(services, m, cfg, logger),
		Metrics: m,
	}, nil
}
