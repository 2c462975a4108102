package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient].
// It normalises cfg.ServerURL (a missing scheme means http) and seeds the
// bearer token from cfg.Token.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	if cfg.Token != "" {
		c.SetToken(cfg.Token)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
	h.client.SetBearerToken(h.token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Ping(ctx context.Context) (models.PingResponse, error) {
	var result models.PingResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/ping")
	if err != nil {
		return models.PingResponse{}, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PingResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.TokenResponse, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	// the JSON body is authoritative, the header is a fallback
	if result.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.TokenResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		result.Token = token
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("username", request.Username).Msg("logged in")
	return result, nil
}

func (h *httpAPIClient) ListMenus(ctx context.Context) ([]models.MenuItem, error) {
	var result models.DataResponse[models.MenuItem]

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/menus")
	if err != nil {
		return nil, fmt.Errorf("list menus request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (h *httpAPIClient) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var result models.DataResponse[models.Customer]

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/customers")
	if err != nil {
		return nil, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (h *httpAPIClient) PlaceOrder(ctx context.Context, request models.OrderRequest) (models.OrderCreatedResponse, error) {
	var result models.OrderCreatedResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/orders")
	if err != nil {
		return models.OrderCreatedResponse{}, fmt.Errorf("place order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OrderCreatedResponse{}, err
	}

	return result, nil
}

func (h *httpAPIClient) OrderSummary(ctx context.Context) (models.OrderSummary, error) {
	var result models.OrderSummary

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/orders/summary")
	if err != nil {
		return models.OrderSummary{}, fmt.Errorf("order summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OrderSummary{}, err
	}

	return result, nil
}
