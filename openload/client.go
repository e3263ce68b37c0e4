// Package openload is a client for the openload.co file hosting API.
package openload

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultHost is the API host used when no other host is configured.
	DefaultHost = "api.openload.co"
	// DefaultAPIVersion is the path segment substituted into the base URL.
	DefaultAPIVersion = "1"

	baseURLTemplate = "https://%s/%s/"
	defaultTimeout  = 30 * time.Second

	// uploadField is the multipart field the upload server reads the file from.
	uploadField = "upload_file"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client represents an openload API client. It is safe for concurrent use:
// nothing is written to it after NewClient returns.
type Client struct {
	login      string
	key        string
	host       string
	apiVersion string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	rest       *resty.Client
	logger     *logrus.Logger
}

var _ ClientAPI = (*Client)(nil)

// envelope is the wrapper around every API response. Result stays raw until
// the status has been classified.
type envelope struct {
	Status *int                `json:"status"`
	Msg    string              `json:"msg"`
	Result jsoniter.RawMessage `json:"result"`
}

// NewClient creates a new openload client for the given API login and key.
// Neither value is validated; the service is the only authority on them.
func NewClient(login, key string, opts ...Option) *Client {
	c := &Client{
		login:      login,
		key:        key,
		host:       DefaultHost,
		apiVersion: DefaultAPIVersion,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Work on a copy so a caller's client, http.DefaultClient included, is
	// never modified.
	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc

	if c.baseURL == "" {
		c.baseURL = fmt.Sprintf(baseURLTemplate, c.host, c.apiVersion)
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	c.rest = resty.NewWithClient(c.httpClient).
		SetLogger(c.logger).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return c
}

// BaseURL returns the URL every relative endpoint path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get issues a GET for path with params plus the credentials, and decodes
// the envelope's result into out. Credentials overwrite same-named params.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	query := make(map[string]string, len(params)+2)
	for k, v := range params {
		query[k] = v
	}
	query["login"] = c.login
	query["key"] = c.key

	c.logger.WithField("endpoint", path).Debug("openload request")

	start := time.Now()
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(c.baseURL + path)
	observeDuration(path, start)
	if err != nil {
		countRequest(path, outcomeTransport)
		return &TransportError{Op: path, Err: err}
	}

	return c.process(path, resp.Body(), out)
}

// upload posts the file at filePath to a single-use upload URL.
func (c *Client) upload(ctx context.Context, uploadURL, filePath string, out any) error {
	const op = "upload"

	f, err := os.Open(filePath)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer f.Close()

	c.logger.WithField("file", filePath).Debug("openload upload")

	start := time.Now()
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFileReader(uploadField, filepath.Base(filePath), f).
		Post(uploadURL)
	observeDuration(op, start)
	if err != nil {
		countRequest(op, outcomeTransport)
		return &TransportError{Op: op, Err: err}
	}

	return c.process(op, resp.Body(), out)
}

// process decodes the envelope, classifies its status and only then touches
// the result.
func (c *Client) process(op string, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		countRequest(op, outcomeTransport)
		return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}

	if env.Status == nil {
		countRequest(op, outcomeTransport)
		return &TransportError{Op: op, Err: fmt.Errorf("response carries no status")}
	}
	status := *env.Status

	if err := CheckStatus(status, env.Msg); err != nil {
		countRequest(op, outcomeLabel(err))
		return err
	}

	outcome := outcomeOK
	if status != http.StatusOK {
		outcome = outcomeUnclassified
		c.logger.WithFields(logrus.Fields{
			"endpoint": op,
			"status":   status,
			"msg":      env.Msg,
		}).Warn("openload returned an unclassified status, passing result through")
	}

	if out != nil && !isEmptyResult(env.Result) {
		if err := json.Unmarshal(env.Result, out); err != nil {
			countRequest(op, outcomeTransport)
			return &TransportError{Op: op, Err: fmt.Errorf("decoding result: %w", err)}
		}
	}
	countRequest(op, outcome)
	return nil
}

func isEmptyResult(raw jsoniter.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
