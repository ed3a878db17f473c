package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "secure-data-client"

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself as the
// secure-data client and asks for JSON responses.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	return &HTTPClient{Client: client}
}
