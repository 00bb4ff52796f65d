package account

import (
	"context"
	"net/url"

	"github.com/natserract/eleyo/pkg/eleyo"
)

// AccountClient defines the interface for account API operations
type AccountClient interface {
	// List returns the users matching params
	List(ctx context.Context, params url.Values) (eleyo.Value, error)

	// Get returns a single user
	Get(ctx context.Context, uuid string, params url.Values) (eleyo.Value, error)

	// Create registers a new user
	Create(ctx context.Context, params interface{}) (eleyo.Value, error)

	// Update modifies an existing user
	Update(ctx context.Context, uuid string, params interface{}) (eleyo.Value, error)

	// Merge merges two users
	Merge(ctx context.Context, uuid1, uuid2 string) (eleyo.Value, error)

	// Delete removes a user
	Delete(ctx context.Context, uuid string) (eleyo.Value, error)

	// Owner returns the account owner; requires an access token
	Owner(ctx context.Context, params url.Values) (eleyo.Value, error)

	ListUserLocks(ctx context.Context, uuid string) (eleyo.Value, error)
	AddUserLock(ctx context.Context, uuid, scope, reason string) (eleyo.Value, error)
	DeleteUserLock(ctx context.Context, uuid, lockID string) (eleyo.Value, error)

	ListRelationships(ctx context.Context, uuid string) (eleyo.Value, error)
	AddRelationship(ctx context.Context, uuid string, params interface{}) (eleyo.Value, error)
	UpdateRelationship(ctx context.Context, uuid, relationshipID string, params interface{}) (eleyo.Value, error)
	DeleteRelationship(ctx context.Context, uuid, relationshipID string) (eleyo.Value, error)
}
