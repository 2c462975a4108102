package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "server", "debug")}

	rr, captured := executeWithTraceID(h, "my-custom-trace-id")

	require.NotNil(t, captured)
	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"my-custom-trace-id"`)
}

func TestWithTraceID_GeneratesUUIDv7(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "server", "debug")}

	rr, captured := executeWithTraceID(h, "")

	require.NotNil(t, captured)
	traceID := rr.Header().Get(traceIDHeader)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Contains(t, buf.String(), traceID)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	first, _ := executeWithTraceID(h, "")
	second, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
