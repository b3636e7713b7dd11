package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "nft-creator"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://storage.thirdweb.com", 30*time.Second)
//	resp, err := client.R().Post("/ipfs/upload")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A zero timeout keeps
// resty's default, which is no timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Clients never retry: every
// outbound call in this application is a state-changing write.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
