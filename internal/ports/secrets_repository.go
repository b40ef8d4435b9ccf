package ports

import (
	"context"

	"github.com/hashicorp/vault/api"
)

type (
	// SecretsRepository defines the interface for interacting with a secrets
	// storage backend.
	SecretsRepository interface {
		// SetToken sets the authentication token for the secrets' repository.
		SetToken(v string)
		// GetSecrets retrieves secrets from the specified path.
		GetSecrets(ctx context.Context, path string) (*api.Secret, error)
	}
)
