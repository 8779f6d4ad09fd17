package blindpay

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	webhookEndpointsPath      = "/instances/%s/webhook-endpoints"
	webhookEndpointPath       = "/instances/%s/webhook-endpoints/%s"
	webhookEndpointSecretPath = "/instances/%s/webhook-endpoints/%s/secret"
	webhookPortalAccessPath   = "/instances/%s/webhook-endpoints/portal-access"
)

// WebhookEvent is an event type an endpoint can subscribe to. The wire
// names mix snake and camel case, so each value is spelled out.
type WebhookEvent string

const (
	WebhookEventReceiverNew         WebhookEvent = "receiver.new"
	WebhookEventReceiverUpdate      WebhookEvent = "receiver.update"
	WebhookEventBankAccountNew      WebhookEvent = "bankAccount.new"
	WebhookEventPayoutNew           WebhookEvent = "payout.new"
	WebhookEventPayoutUpdate        WebhookEvent = "payout.update"
	WebhookEventPayoutComplete      WebhookEvent = "payout.complete"
	WebhookEventPayoutPartnerFee    WebhookEvent = "payout.partnerFee"
	WebhookEventBlockchainWalletNew WebhookEvent = "blockchainWallet.new"
	WebhookEventPayinNew            WebhookEvent = "payin.new"
	WebhookEventPayinUpdate         WebhookEvent = "payin.update"
	WebhookEventPayinComplete       WebhookEvent = "payin.complete"
	WebhookEventPayinPartnerFee     WebhookEvent = "payin.partnerFee"
	WebhookEventTOSAccept           WebhookEvent = "tos.accept"
)

var allWebhookEvents = []WebhookEvent{
	WebhookEventReceiverNew,
	WebhookEventReceiverUpdate,
	WebhookEventBankAccountNew,
	WebhookEventPayoutNew,
	WebhookEventPayoutUpdate,
	WebhookEventPayoutComplete,
	WebhookEventPayoutPartnerFee,
	WebhookEventBlockchainWalletNew,
	WebhookEventPayinNew,
	WebhookEventPayinUpdate,
	WebhookEventPayinComplete,
	WebhookEventPayinPartnerFee,
	WebhookEventTOSAccept,
}

func (e WebhookEvent) Validate() error {
	if !slices.Contains(allWebhookEvents, e) {
		return fmt.Errorf("invalid webhook event %q", e)
	}
	return nil
}

// WebhookEndpoint is a URL subscribed to instance events.
type WebhookEndpoint struct {
	ID          string         `json:"id"`
	URL         string         `json:"url"`
	Events      []WebhookEvent `json:"events"`
	LastEventAt string         `json:"last_event_at"`
	InstanceID  string         `json:"instance_id"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type CreateWebhookEndpointInput struct {
	URL    string         `json:"url"`
	Events []WebhookEvent `json:"events"`
}

func (i CreateWebhookEndpointInput) Validate() error {
	if err := validateURL(i.URL); err != nil {
		return err
	}
	if len(i.Events) == 0 {
		return fmt.Errorf("at least one event is required")
	}
	for _, event := range i.Events {
		if err := event.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type CreateWebhookEndpointResponse struct {
	ID string `json:"id"`
}

type GetWebhookEndpointSecretResponse struct {
	Key string `json:"key"`
}

type GetPortalAccessURLResponse struct {
	URL string `json:"url"`
}

// WebhookEndpointsService manages the instance's webhook subscriptions.
type WebhookEndpointsService struct {
	client *Client
}

// List returns all webhook endpoints on the instance.
func (s *WebhookEndpointsService) List(ctx context.Context) ([]WebhookEndpoint, error) {
	path := fmt.Sprintf(webhookEndpointsPath, s.client.instanceID)
	endpoints, err := get[[]WebhookEndpoint](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *endpoints, nil
}

// Create subscribes a URL to the given events.
func (s *WebhookEndpointsService) Create(ctx context.Context, input CreateWebhookEndpointInput) (*CreateWebhookEndpointResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create webhook endpoint input: %w", err)
	}

	path := fmt.Sprintf(webhookEndpointsPath, s.client.instanceID)
	return post[CreateWebhookEndpointResponse](ctx, s.client, path, input)
}

// Delete removes a webhook endpoint.
func (s *WebhookEndpointsService) Delete(ctx context.Context, webhookEndpointID string) error {
	if webhookEndpointID == "" {
		return fmt.Errorf("webhookEndpointID is required")
	}

	path := fmt.Sprintf(webhookEndpointPath, s.client.instanceID, webhookEndpointID)
	return del(ctx, s.client, path)
}

// GetSecret returns the endpoint's signing secret, used to verify
// delivery signatures. See VerifyWebhookSignature.
func (s *WebhookEndpointsService) GetSecret(ctx context.Context, webhookEndpointID string) (*GetWebhookEndpointSecretResponse, error) {
	if webhookEndpointID == "" {
		return nil, fmt.Errorf("webhookEndpointID is required")
	}

	path := fmt.Sprintf(webhookEndpointSecretPath, s.client.instanceID, webhookEndpointID)
	return get[GetWebhookEndpointSecretResponse](ctx, s.client, path)
}

// GetPortalAccessURL returns a link to the hosted webhook dashboard.
func (s *WebhookEndpointsService) GetPortalAccessURL(ctx context.Context) (*GetPortalAccessURLResponse, error) {
	path := fmt.Sprintf(webhookPortalAccessPath, s.client.instanceID)
	return get[GetPortalAccessURLResponse](ctx, s.client, path)
}
