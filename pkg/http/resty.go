package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestyClient is a Doer backed by resty.
type RestyClient struct {
	client *resty.Client
	logger *zap.Logger
}

type acceptKey struct{}

// NewRestyClient creates a RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration, logger *zap.Logger) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	// resty derives an Accept header from a JSON Content-Type; send only
	// what the caller asked for.
	c.SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
		if strip, _ := req.Context().Value(acceptKey{}).(bool); strip {
			req.Header.Del("Accept")
		}
		return nil
	})
	return &RestyClient{client: c, logger: logger}
}

func (r *RestyClient) Do(opts RequestOptions) (*Response, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := uuid.NewString()

	if opts.Headers["Accept"] == "" && opts.Headers["accept"] == "" {
		ctx = context.WithValue(ctx, acceptKey{}, true)
	}

	req := r.client.R().SetContext(ctx)
	if len(opts.Headers) > 0 {
		req.SetHeaders(opts.Headers)
	}
	if opts.Body != nil {
		b, err := encodeBody(opts.Body, opts.Headers)
		if err != nil {
			r.logger.Error("Failed to build request", zap.Error(err), zap.String("method", opts.Method), zap.String("url", opts.URL))
			return nil, err
		}
		if req.Header.Get("Content-Type") == "" {
			req.SetHeader("Content-Type", "application/json")
		}
		req.SetBody(b)
	}

	r.logger.Debug("Making HTTP request",
		zap.String("request_id", requestID),
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	resp, err := req.Execute(opts.Method, opts.URL)
	if err != nil {
		r.logger.Warn("HTTP request failed",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("method", opts.Method),
			zap.String("url", opts.URL))
		return nil, err
	}

	r.logger.Debug("HTTP request completed",
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode()),
		zap.String("method", opts.Method),
		zap.String("url", opts.URL))

	return &Response{
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
		Body:       resp.Body(),
	}, nil
}
