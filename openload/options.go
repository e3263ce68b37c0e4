package openload

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures a Client during construction in NewClient.
type Option func(*Client) error

// WithHTTPClient sets the http.Client requests are made with. The client
// keeps a copy of hc, so hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout sets the request timeout. It applies whatever the order of
// options, also on top of a client given with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithHost sets the API host substituted into the base URL.
func WithHost(host string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(host) == "" {
			return fmt.Errorf("host cannot be empty")
		}
		c.host = host
		return nil
	}
}

// WithAPIVersion sets the API version substituted into the base URL.
func WithAPIVersion(version string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(version) == "" {
			return fmt.Errorf("api version cannot be empty")
		}
		c.apiVersion = version
		return nil
	}
}

// WithBaseURL overrides the whole base URL, ignoring host and version.
// Useful for mirrors and tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(baseURL) == "" {
			return fmt.Errorf("base url cannot be empty")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
