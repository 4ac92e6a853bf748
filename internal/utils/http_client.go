// Package utils provides general-purpose helpers used across the attestation
// kit: the shared HTTP client, identifier generation and key digests.
package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-attestation-kit"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient that announces itself with
// the kit's User-Agent and expects JSON responses.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
