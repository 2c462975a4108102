package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/metrics"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.Customer, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.Customer, error)
	createTokenFn func(ctx context.Context, customer models.Customer) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Principal, error)
}

func (f *fakeAuthService) RegisterCustomer(ctx context.Context, request models.RegisterRequest) (models.Customer, error) {
	return f.registerFn(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Customer, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, customer models.Customer) (models.Token, error) {
	return f.createTokenFn(ctx, customer)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	if f.parseTokenFn == nil {
		return models.Principal{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.parseTokenFn(ctx, tokenString)
}

type fakeCustomerService struct {
	listFn func(ctx context.Context) ([]models.Customer, error)
}

func (f *fakeCustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return f.listFn(ctx)
}

type fakeMenuService struct {
	listFn func(ctx context.Context) ([]models.MenuItem, error)
}

func (f *fakeMenuService) ListMenus(ctx context.Context) ([]models.MenuItem, error) {
	return f.listFn(ctx)
}

type fakeOrderService struct {
	placeFn   func(ctx context.Context, customerID int64, request models.OrderRequest) (models.Order, error)
	summaryFn func(ctx context.Context, customerID int64) (models.OrderSummary, error)
}

func (f *fakeOrderService) PlaceOrder(ctx context.Context, customerID int64, request models.OrderRequest) (models.Order, error) {
	return f.placeFn(ctx, customerID, request)
}

func (f *fakeOrderService) GetOrderSummary(ctx context.Context, customerID int64) (models.OrderSummary, error) {
	return f.summaryFn(ctx, customerID)
}

type fakeAppInfoService struct {
	version string
	pingFn  func(ctx context.Context) (models.PingResponse, error)
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Ping(ctx context.Context) (models.PingResponse, error) {
	return f.pingFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// validToken is accepted by acceptingAuth for principal 42 "alice".
const validToken = "valid-token"

var testPrincipal = models.Principal{ID: 42, Username: "alice"}

// acceptingAuth parses validToken and rejects everything else.
func acceptingAuth() *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Principal, error) {
			if tokenString == validToken {
				return testPrincipal, nil
			}
			return models.Principal{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AuthService == nil {
		services.AuthService = acceptingAuth()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test"}
	}
	return NewHandler(services, metrics.New(), config.Server{HTTPAddress: ":8080", RequestTimeout: 5 * time.Second}, logger.Nop())
}

// serve sends one request through the full router.
func serve(t *testing.T, h *Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg.Message
}

func jsonReader(raw []byte) io.Reader {
	return bytes.NewReader(raw)
}
