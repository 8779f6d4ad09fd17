package blindpay

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const tosPath = "/e/instances/%s/tos"

// InitiateTOSInput starts a hosted terms-of-service acceptance flow.
// An empty IdempotencyKey is filled with a random UUID so that retries
// of the same call do not create duplicate flows.
type InitiateTOSInput struct {
	IdempotencyKey string `json:"idempotency_key"`
	ReceiverID     string `json:"receiver_id,omitempty"`
	RedirectURL    string `json:"redirect_url,omitempty"`
}

func (i InitiateTOSInput) Validate() error {
	if i.RedirectURL != "" {
		if err := validateURL(i.RedirectURL); err != nil {
			return err
		}
	}
	return nil
}

// InitiateTOSResponse carries the hosted acceptance page URL.
type InitiateTOSResponse struct {
	URL string `json:"url"`
}

// TermsOfServiceService starts terms-of-service acceptance flows for
// receivers.
type TermsOfServiceService struct {
	client *Client
}

// Initiate creates a hosted acceptance flow and returns its URL.
func (s *TermsOfServiceService) Initiate(ctx context.Context, input InitiateTOSInput) (*InitiateTOSResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating initiate tos input: %w", err)
	}
	if input.IdempotencyKey == "" {
		input.IdempotencyKey = uuid.NewString()
	}

	path := fmt.Sprintf(tosPath, s.client.instanceID)
	return post[InitiateTOSResponse](ctx, s.client, path, input)
}
