package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultHTTPClientTimeout bounds every request made through [HTTPClient]
// unless the caller supplies its own timeout.
const DefaultHTTPClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 0)
//	resp, err := client.R().Get("/menus")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient rooted at baseURL that speaks JSON.
//
// A non-positive timeout selects [DefaultHTTPClientTimeout]. Each call
// returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultHTTPClientTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}

// SetBearerToken makes every following request carry
// "Authorization: Bearer <token>".
func (c *HTTPClient) SetBearerToken(token string) *HTTPClient {
	c.Client.SetAuthScheme(BearerScheme)
	c.Client.SetAuthToken(token)
	return c
}
