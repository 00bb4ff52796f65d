package account

import (
	"context"
	"net/http"

	"github.com/natserract/eleyo/pkg/eleyo"
)

type userLockRequest struct {
	UserLock userLock `json:"user_lock"`
}

type userLock struct {
	Scope  string `json:"scope"`
	Reason string `json:"reason"`
}

// ListUserLocks returns the locks placed on a user.
func (c *Client) ListUserLocks(ctx context.Context, uuid string) (eleyo.Value, error) {
	return c.call(ctx, request{
		method: http.MethodGet,
		path:   "/users/" + escape(uuid) + "/locks",
	})
}

// AddUserLock locks the user for scope. A 201 response yields a true value.
func (c *Client) AddUserLock(ctx context.Context, uuid, scope, reason string) (eleyo.Value, error) {
	return c.call(ctx, request{
		method:         http.MethodPost,
		path:           "/users/" + escape(uuid) + "/locks",
		body:           userLockRequest{UserLock: userLock{Scope: scope, Reason: reason}},
		acceptedStatus: http.StatusCreated,
	})
}

// DeleteUserLock removes a lock from a user.
func (c *Client) DeleteUserLock(ctx context.Context, uuid, lockID string) (eleyo.Value, error) {
	return c.call(ctx, request{
		method: http.MethodDelete,
		path:   "/users/" + escape(uuid) + "/locks/" + escape(lockID),
	})
}
