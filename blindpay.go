// Package blindpay provides a typed client for the BlindPay payments API.
//
// A Client is scoped to one instance and exposes the API's resources as
// stateless services:
//
//	client, err := blindpay.New(apiKey, instanceID)
//	if err != nil {
//		return err
//	}
//	receivers, err := client.Receivers.List(ctx)
//
// The client issues exactly one HTTP exchange per operation call. Retry,
// caching, and pagination policies are left to the caller.
package blindpay

import (
	"fmt"

	"github.com/blindpay/blindpay-go/httpclient"
)

// Version is the release of this library, reported in the User-Agent
// header of every request.
const Version = "0.1.0"

// DefaultBaseURL is the production BlindPay API host.
const DefaultBaseURL = "https://api.blindpay.com/v1"

const userAgent = "blindpay-go/" + Version

// Client provides typed access to the BlindPay API. All resource
// services share the client's credentials and transport.
type Client struct {
	apiKey     string
	instanceID string
	baseURL    string
	httpClient httpclient.HTTPClientInterface

	Available         *AvailableService
	Instances         *InstancesService
	APIKeys           *APIKeysService
	WebhookEndpoints  *WebhookEndpointsService
	TermsOfService    *TermsOfServiceService
	PartnerFees       *PartnerFeesService
	Payins            *PayinsService
	PayinQuotes       *PayinQuotesService
	Payouts           *PayoutsService
	Quotes            *QuotesService
	Receivers         *ReceiversService
	BankAccounts      *BankAccountsService
	VirtualAccounts   *VirtualAccountsService
	BlockchainWallets *BlockchainWalletsService
	OfframpWallets    *OfframpWalletsService
}

// ClientOptions configures a Client beyond the required credentials.
type ClientOptions struct {
	// APIKey authenticates every request as a bearer token.
	APIKey string
	// InstanceID is the BlindPay instance the client operates on. It is
	// interpolated into instance-scoped resource paths.
	InstanceID string
	// BaseURL overrides the production API host. Optional.
	BaseURL string
	// HTTPClient overrides the default transport. Optional.
	HTTPClient httpclient.HTTPClientInterface
}

// Validate validates the ClientOptions fields.
func (opts ClientOptions) Validate() error {
	if opts.APIKey == "" {
		return ErrMissingAPIKey
	}
	if opts.InstanceID == "" {
		return ErrMissingInstanceID
	}
	return nil
}

// New creates a BlindPay API client with the default transport and host.
func New(apiKey, instanceID string) (*Client, error) {
	return NewWithOptions(ClientOptions{APIKey: apiKey, InstanceID: instanceID})
}

// NewWithOptions creates a BlindPay API client from explicit options.
func NewWithOptions(opts ClientOptions) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating client options: %w", err)
	}

	c := &Client{
		apiKey:     opts.APIKey,
		instanceID: opts.InstanceID,
		baseURL:    DefaultBaseURL,
		httpClient: httpclient.DefaultClient(),
	}
	if opts.BaseURL != "" {
		c.baseURL = opts.BaseURL
	}
	if opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
	}

	c.Available = &AvailableService{client: c}
	c.Instances = &InstancesService{client: c}
	c.APIKeys = &APIKeysService{client: c}
	c.WebhookEndpoints = &WebhookEndpointsService{client: c}
	c.TermsOfService = &TermsOfServiceService{client: c}
	c.PartnerFees = &PartnerFeesService{client: c}
	c.Payins = &PayinsService{client: c}
	c.PayinQuotes = &PayinQuotesService{client: c}
	c.Payouts = &PayoutsService{client: c}
	c.Quotes = &QuotesService{client: c}
	c.Receivers = &ReceiversService{client: c}
	c.BankAccounts = &BankAccountsService{client: c}
	c.VirtualAccounts = &VirtualAccountsService{client: c}
	c.BlockchainWallets = &BlockchainWalletsService{client: c}
	c.OfframpWallets = &OfframpWalletsService{client: c}

	return c, nil
}

// InstanceID returns the instance the client is scoped to.
func (c *Client) InstanceID() string {
	return c.instanceID
}

// BaseURL returns the API host the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}
