package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{})

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_AppliesOptions(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{
		BaseURL: "http://localhost:5001/api",
		Timeout: 3 * time.Second,
	})

	if client.BaseURL != "http://localhost:5001/api" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
	if got := client.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}
}

func TestNewHTTPClient_CookieJar(t *testing.T) {
	if NewHTTPClient(HTTPClientOptions{WithCredentials: true}).GetClient().Jar == nil {
		t.Error("expected cookie jar when credentials are enabled")
	}
	if NewHTTPClient(HTTPClientOptions{WithCredentials: false}).GetClient().Jar != nil {
		t.Error("expected no cookie jar when credentials are disabled")
	}
}

func TestHTTPClient_RelativeRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/docks" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{BaseURL: srv.URL + "/api"})

	resp, err := client.R().Get("/docks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode())
	}
}
