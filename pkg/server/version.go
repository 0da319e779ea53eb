package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not negotiate
	// a specific one.
	DefaultAPIVersion = "v1"

	// Vendor media type bounds, as in
	// application/vnd.zyfetch.v1+json.
	apiMediaTypePrefix = "application/vnd.zyfetch."
	apiMediaTypeSuffix = "+json"
)

// negotiateAPIVersion resolves the API version from the Accept header.
// Only the vendor media type participates; anything else, including
// unsupported versions, falls back to the default.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")

	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(part)
		if i := strings.IndexByte(mediaType, ';'); i >= 0 {
			mediaType = strings.TrimSpace(mediaType[:i])
		}

		if !strings.HasPrefix(mediaType, apiMediaTypePrefix) || !strings.HasSuffix(mediaType, apiMediaTypeSuffix) {
			continue
		}

		version := strings.TrimSuffix(strings.TrimPrefix(mediaType, apiMediaTypePrefix), apiMediaTypeSuffix)
		if isValidAPIVersion(version) {
			return version
		}
	}

	return DefaultAPIVersion
}

// isValidAPIVersion reports whether the server can speak the version.
func isValidAPIVersion(version string) bool {
	return version == "v1"
}
