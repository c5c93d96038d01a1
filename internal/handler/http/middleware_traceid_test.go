package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-port-ops/internal/logger"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	rr, req := executeWithTraceID(newTestHandler(), "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	require.NotNil(t, req)
	assert.NotNil(t, logger.FromRequest(req))
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for range 100 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)

		_, err := uuid.Parse(id)
		require.NoError(t, err, "trace ID must be valid UUID, got: %s", id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	newTestHandler().withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}

func TestWithTraceID_ReplacesUnsafeID(t *testing.T) {
	tests := []struct {
		name    string
		traceID string
	}{
		{"spaces", "trace id with spaces"},
		{"control chars", "abc\x01def"},
		{"too long", strings.Repeat("a", maxTraceIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := executeWithTraceID(newTestHandler(), tt.traceID)

			got := rr.Header().Get(traceIDHeader)
			assert.NotEqual(t, tt.traceID, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
