package http

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/metrics"
	"github.com/MKhiriev/go-food-order/internal/service"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// port is reported by the root route.
	port string
	// serveMetrics mounts /metrics on the API router when no separate
	// metrics listener is configured.
	serveMetrics bool
	cfg          config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	_, port, err := net.SplitHostPort(cfg.HTTPAddress)
	if err != nil {
		port = cfg.HTTPAddress
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		metrics:      metrics,
		port:         port,
		serveMetrics: cfg.MetricsAddress == "",
		cfg:          cfg,
		logger:       logger,
	}
}

// decodeJSON reads a single JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
