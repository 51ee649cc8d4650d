package sources

import (
	"net/http"
	"strings"

	"github.com/nzai/tickerboard/constants"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=sources_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// YahooFinanceOption is a configuration option for the yahoo finance source.
type YahooFinanceOption func(*YahooFinance)

// WithBaseURL sets the quote page host.
func WithBaseURL(baseURL string) YahooFinanceOption {
	return func(y *YahooFinance) {
		if baseURL != "" {
			y.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(httpClient HTTPClient) YahooFinanceOption {
	return func(y *YahooFinance) {
		if httpClient != nil {
			y.httpClient = httpClient
		}
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) YahooFinanceOption {
	return func(y *YahooFinance) {
		for key, values := range header {
			for _, value := range values {
				y.header.Add(key, value)
			}
		}
	}
}

// WithUserAgent overrides the browser-like user agent.
func WithUserAgent(userAgent string) YahooFinanceOption {
	return func(y *YahooFinance) {
		if userAgent != "" {
			y.header.Set("User-Agent", userAgent)
		}
	}
}

func defaultHeader() http.Header {
	header := http.Header{}
	header.Set("User-Agent", constants.BrowserUserAgent)
	return header
}
