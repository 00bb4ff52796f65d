package account

import (
	"context"

	"github.com/natserract/eleyo/pkg/eleyo"
)

// TODO: map the relationships endpoints once the API documents their paths.

func (c *Client) ListRelationships(ctx context.Context, uuid string) (eleyo.Value, error) {
	return eleyo.Value{}, eleyo.ErrNotImplemented
}

func (c *Client) AddRelationship(ctx context.Context, uuid string, params interface{}) (eleyo.Value, error) {
	return eleyo.Value{}, eleyo.ErrNotImplemented
}

func (c *Client) UpdateRelationship(ctx context.Context, uuid, relationshipID string, params interface{}) (eleyo.Value, error) {
	return eleyo.Value{}, eleyo.ErrNotImplemented
}

func (c *Client) DeleteRelationship(ctx context.Context, uuid, relationshipID string) (eleyo.Value, error) {
	return eleyo.Value{}, eleyo.ErrNotImplemented
}
