// Package account provides a client for the Eleyo user account API.
//
// The account API manages user records, account ownership and user locks.
// Requests authenticate either with a client id / client secret pair or with a
// user access token, and target the server selected by an eleyo.Environment.
// Responses are returned as eleyo.Value; any non-2xx status is returned as an
// *eleyo.APIError carrying the status code and the raw body.
package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/natserract/eleyo/pkg/eleyo"
	httpclient "github.com/natserract/eleyo/pkg/http"
	"go.uber.org/zap"
)

// Client is the main client for interacting with the Eleyo account API
type Client struct {
	config      *Config
	credential  eleyo.Credential
	accessToken *eleyo.AccessToken
	httpClient  httpclient.Doer
	logger      *zap.Logger
}

// Options mirrors the keyword form of client construction. AccessToken takes
// precedence over Auth when both are set.
type Options struct {
	Auth        *eleyo.Auth
	AccessToken *eleyo.AccessToken
	Config      *Config
	Transport   httpclient.Doer
	Logger      *zap.Logger
}

// NewClient creates a new account client with default production logger
func NewClient(cfg *Config, cred eleyo.Credential) (*Client, error) {
	logger, _ := zap.NewProduction()
	return NewClientWithLogger(cfg, cred, logger)
}

// NewClientWithLogger creates a new account client with a custom logger
func NewClientWithLogger(cfg *Config, cred eleyo.Credential, logger *zap.Logger) (*Client, error) {
	return NewClientWithTransport(cfg, cred, httpclient.NewClientWithLogger(logger), logger)
}

// NewClientWithTransport creates a new account client that sends requests through transport
func NewClientWithTransport(cfg *Config, cred eleyo.Credential, transport httpclient.Doer, logger *zap.Logger) (*Client, error) {
	if err := validateCredential(cred); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if transport == nil {
		transport = httpclient.NewClientWithLogger(logger)
	}

	c := &Client{
		config:     cfg.withDefaults(),
		credential: cred,
		httpClient: transport,
		logger:     logger,
	}
	if token, ok := cred.(*eleyo.AccessToken); ok {
		c.accessToken = token
	}
	return c, nil
}

// New creates a client from Options. Only the absence of both credentials is rejected.
func New(opts Options) (*Client, error) {
	var cred eleyo.Credential
	switch {
	case opts.AccessToken != nil:
		cred = opts.AccessToken
	case opts.Auth != nil:
		cred = opts.Auth
	default:
		return nil, &eleyo.InitializerError{Field: "auth_or_access_token", Reason: "can't be blank"}
	}

	logger := opts.Logger
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return NewClientWithTransport(opts.Config, cred, opts.Transport, logger)
}

func validateCredential(cred eleyo.Credential) error {
	blank := &eleyo.InitializerError{Field: "auth_or_access_token", Reason: "can't be blank"}

	switch c := cred.(type) {
	case nil:
		return blank
	case *eleyo.Auth:
		if c == nil {
			return blank
		}
	case *eleyo.AccessToken:
		if c == nil {
			return blank
		}
	default:
		return &eleyo.InitializerError{
			Field:  "credential",
			Reason: "must be of type *eleyo.Auth or *eleyo.AccessToken",
		}
	}
	return nil
}

// APIVersion returns the API version used in request paths.
func (c *Client) APIVersion() string {
	return c.config.APIVersion
}

func (c *Client) apiRoute() string {
	return fmt.Sprintf("%s/api/v%s", c.config.Environment.ServerURI(), c.config.APIVersion)
}

func (c *Client) generateHeaders() map[string]string {
	headers := map[string]string{
		"User-Agent":   eleyo.UserAgent,
		"Content-Type": "application/json",
	}
	for k, v := range c.credential.Headers() {
		headers[k] = v
	}
	return headers
}

// request describes one API call. acceptedStatus, when non-zero, is the status
// that short-circuits to a true value instead of parsing the body.
type request struct {
	method         string
	path           string
	query          url.Values
	body           interface{}
	acceptedStatus int
}

func (c *Client) call(ctx context.Context, r request) (eleyo.Value, error) {
	endpoint, err := httpclient.BuildURL(c.apiRoute(), r.path, r.query)
	if err != nil {
		c.logger.Error("Failed to build URL", zap.Error(err))
		return eleyo.Value{}, fmt.Errorf("failed to build URL: %w", err)
	}

	c.logger.Debug("Making account API request",
		zap.String("method", r.method),
		zap.String("endpoint", endpoint))

	resp, err := c.httpClient.Do(httpclient.RequestOptions{
		Method:  r.method,
		URL:     endpoint,
		Headers: c.generateHeaders(),
		Body:    r.body,
		Context: ctx,
	})
	if err != nil {
		c.logger.Error("Account API request failed", zap.Error(err), zap.String("endpoint", endpoint))
		return eleyo.Value{}, fmt.Errorf("%s %s: %w", r.method, endpoint, err)
	}

	if r.acceptedStatus != 0 && resp.StatusCode == r.acceptedStatus {
		return eleyo.NewValue(true), nil
	}

	if !resp.IsSuccess() {
		c.logger.Warn("Account API returned an error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("method", r.method),
			zap.String("endpoint", endpoint),
			zap.String("response", string(resp.Body)))
		return eleyo.Value{}, &eleyo.APIError{Code: resp.StatusCode, Body: string(resp.Body)}
	}

	v, err := eleyo.ParseValue(resp.Body)
	if err != nil {
		c.logger.Error("Failed to parse account API response", zap.Error(err), zap.String("endpoint", endpoint))
		return eleyo.Value{}, err
	}
	return v, nil
}

// jsonBody encodes params as the request body. Strings and nil encode as JSON
// values too; json.RawMessage is sent as given.
func (c *Client) jsonBody(params interface{}) ([]byte, error) {
	b, err := json.Marshal(params)
	if err != nil {
		c.logger.Error("Failed to encode request body", zap.Error(err))
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return b, nil
}

func escape(id string) string {
	return url.PathEscape(id)
}

var _ AccountClient = (*Client)(nil)
