package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", DefaultAPIVersion},
		{"plain json", "application/json", DefaultAPIVersion},
		{"wildcard", "*/*", DefaultAPIVersion},
		{"vendor v1", "application/vnd.zyfetch.v1+json", "v1"},
		{"vendor v1 with params", "application/vnd.zyfetch.v1+json; charset=utf-8", "v1"},
		{"vendor v1 among others", "text/html, application/vnd.zyfetch.v1+json, */*", "v1"},
		{"unsupported version", "application/vnd.zyfetch.v2+json", DefaultAPIVersion},
		{"malformed version", "application/vnd.zyfetch.vBAD+json", DefaultAPIVersion},
		{"wrong suffix", "application/vnd.zyfetch.v1+xml", DefaultAPIVersion},
		{"empty version", "application/vnd.zyfetch.+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			if got := negotiateAPIVersion(req); got != tt.want {
				t.Fatalf("negotiateAPIVersion(%q) = %q, want %q", tt.accept, got, tt.want)
			}
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1", true},
		{"v2", false},
		{"V1", false},
		{"", false},
		{"1", false},
	}

	for _, tt := range tests {
		if got := isValidAPIVersion(tt.version); got != tt.want {
			t.Fatalf("isValidAPIVersion(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
