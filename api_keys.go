package blindpay

import (
	"context"
	"fmt"
)

const (
	apiKeysPath = "/instances/%s/api-keys"
	apiKeyPath  = "/instances/%s/api-keys/%s"
)

// APIKeyPermission scopes what an API key may do.
type APIKeyPermission string

const (
	APIKeyPermissionFullAccess APIKeyPermission = "full_access"
)

func (p APIKeyPermission) Validate() error {
	switch p {
	case APIKeyPermissionFullAccess:
		return nil
	default:
		return fmt.Errorf("invalid api key permission %q", p)
	}
}

// APIKey is a credential for this API. Token is only returned in full
// at creation time.
type APIKey struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Permission  APIKeyPermission `json:"permission"`
	Token       string           `json:"token"`
	IPWhitelist []string         `json:"ip_whitelist,omitempty"`
	UnkeyID     string           `json:"unkey_id"`
	LastUsedAt  string           `json:"last_used_at,omitempty"`
	InstanceID  string           `json:"instance_id"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type CreateAPIKeyInput struct {
	Name        string           `json:"name"`
	Permission  APIKeyPermission `json:"permission"`
	IPWhitelist []string         `json:"ip_whitelist,omitempty"`
}

func (i CreateAPIKeyInput) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	return i.Permission.Validate()
}

type CreateAPIKeyResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// APIKeysService manages the instance's API keys.
type APIKeysService struct {
	client *Client
}

// List returns all API keys on the instance.
func (s *APIKeysService) List(ctx context.Context) ([]APIKey, error) {
	path := fmt.Sprintf(apiKeysPath, s.client.instanceID)
	keys, err := get[[]APIKey](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *keys, nil
}

// Create issues a new API key. The returned token is shown once and
// cannot be retrieved again.
func (s *APIKeysService) Create(ctx context.Context, input CreateAPIKeyInput) (*CreateAPIKeyResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create api key input: %w", err)
	}

	path := fmt.Sprintf(apiKeysPath, s.client.instanceID)
	return post[CreateAPIKeyResponse](ctx, s.client, path, input)
}

// Get returns an API key by ID.
func (s *APIKeysService) Get(ctx context.Context, apiKeyID string) (*APIKey, error) {
	if apiKeyID == "" {
		return nil, fmt.Errorf("apiKeyID is required")
	}

	path := fmt.Sprintf(apiKeyPath, s.client.instanceID, apiKeyID)
	return get[APIKey](ctx, s.client, path)
}

// Delete revokes an API key.
func (s *APIKeysService) Delete(ctx context.Context, apiKeyID string) error {
	if apiKeyID == "" {
		return fmt.Errorf("apiKeyID is required")
	}

	path := fmt.Sprintf(apiKeyPath, s.client.instanceID, apiKeyID)
	return del(ctx, s.client, path)
}
