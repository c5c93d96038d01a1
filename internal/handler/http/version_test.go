package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	rr := serve(t, newTestHandler().Init(), http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, versionResponse{Version: "1.2.3", Date: "2026-01-01", Commit: "abc"}, decode[versionResponse](t, rr))
}
