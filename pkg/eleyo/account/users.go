package account

import (
	"context"
	"net/http"
	"net/url"

	"github.com/natserract/eleyo/pkg/eleyo"
	httpclient "github.com/natserract/eleyo/pkg/http"
	"go.uber.org/zap"
)

// List returns the users matching params.
func (c *Client) List(ctx context.Context, params url.Values) (eleyo.Value, error) {
	return c.call(ctx, request{
		method: http.MethodGet,
		path:   "/users",
		query:  params,
	})
}

// Get returns a single user.
func (c *Client) Get(ctx context.Context, uuid string, params url.Values) (eleyo.Value, error) {
	return c.call(ctx, request{
		method: http.MethodGet,
		path:   "/users/" + escape(uuid),
		query:  params,
	})
}

// Create registers a new user. A 201 response yields a true value.
func (c *Client) Create(ctx context.Context, params interface{}) (eleyo.Value, error) {
	body, err := c.jsonBody(params)
	if err != nil {
		return eleyo.Value{}, err
	}

	return c.call(ctx, request{
		method:         http.MethodPost,
		path:           "/users/",
		body:           body,
		acceptedStatus: http.StatusCreated,
	})
}

// Update modifies a user. A 204 response yields a true value.
func (c *Client) Update(ctx context.Context, uuid string, params interface{}) (eleyo.Value, error) {
	var body interface{}
	if c.config.FormEncodedUpdate {
		form, err := httpclient.FormValues(params)
		if err != nil {
			c.logger.Error("Failed to encode update params", zap.Error(err))
			return eleyo.Value{}, err
		}
		body = form
	} else {
		b, err := c.jsonBody(params)
		if err != nil {
			return eleyo.Value{}, err
		}
		body = b
	}

	return c.call(ctx, request{
		method:         http.MethodPut,
		path:           "/users/" + escape(uuid),
		body:           body,
		acceptedStatus: http.StatusNoContent,
	})
}

// Merge merges the user uuid2 into uuid1.
func (c *Client) Merge(ctx context.Context, uuid1, uuid2 string) (eleyo.Value, error) {
	return c.call(ctx, request{
		method: http.MethodPut,
		path:   "/users/merge/" + escape(uuid1) + "/" + escape(uuid2),
	})
}

// Delete removes a user.
func (c *Client) Delete(ctx context.Context, uuid string) (eleyo.Value, error) {
	return c.call(ctx, request{
		method: http.MethodDelete,
		path:   "/users/" + escape(uuid),
	})
}

// Owner returns the account owner of the access token's user. It requires an
// access token and fails before any request is sent without one.
func (c *Client) Owner(ctx context.Context, params url.Values) (eleyo.Value, error) {
	if c.accessToken == nil {
		return eleyo.Value{}, &eleyo.RequirementError{Field: "access_token", Reason: "can't be blank"}
	}

	return c.call(ctx, request{
		method: http.MethodGet,
		path:   "/users/owner",
		query:  params,
	})
}
