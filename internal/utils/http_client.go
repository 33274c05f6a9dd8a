package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for calls to external services such as the
// completion backend. Embedding exposes the full resty API while leaving
// room for shared behavior (headers, retries) to live in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with an independent connection pool
// and default resty configuration. Callers are expected to set their own
// base URL, auth and timeout.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
