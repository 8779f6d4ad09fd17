package blindpay

import (
	"context"
	"fmt"
)

const (
	payinsPath     = "/instances/%s/payins"
	payinPath      = "/instances/%s/payins/%s"
	payinTrackPath = "/e/payins/%s"
	evmPayinPath   = "/instances/%s/payins/evm"
)

// Payin is a fiat-to-stablecoin payment funded by a payer against a
// payin quote.
type Payin struct {
	ID           string            `json:"id"`
	ReceiverID   string            `json:"receiver_id"`
	Status       TransactionStatus `json:"status"`
	PayinQuoteID string            `json:"payin_quote_id"`
	InstanceID   string            `json:"instance_id"`

	TrackingTransaction PayinTrackingTransaction `json:"tracking_transaction"`
	TrackingPayment     PayinTrackingPayment     `json:"tracking_payment"`
	TrackingComplete    PayinTrackingComplete    `json:"tracking_complete"`
	TrackingPartnerFee  *PayinTrackingPartnerFee `json:"tracking_partner_fee,omitempty"`

	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
	PaymentMethod  PayinPaymentMethod `json:"payment_method"`
	SenderAmount   float64            `json:"sender_amount"`
	ReceiverAmount float64            `json:"receiver_amount"`
	Token          StablecoinToken    `json:"token"`
	Currency       Currency           `json:"currency"`
	Network        Network            `json:"network"`
}

// ListPayinsResponse is one page of payins.
type ListPayinsResponse struct {
	Data       []Payin    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateEVMPayinInput executes a payin quote settling to an EVM wallet.
type CreateEVMPayinInput struct {
	PayinQuoteID string `json:"payin_quote_id"`
}

func (i CreateEVMPayinInput) Validate() error {
	if i.PayinQuoteID == "" {
		return fmt.Errorf("payin_quote_id is required")
	}
	return nil
}

// PayinsService manages the payins of an instance.
type PayinsService struct {
	client *Client
}

// List returns one page of payins.
func (s *PayinsService) List(ctx context.Context, opts *ListOptions) (*ListPayinsResponse, error) {
	query, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf(payinsPath, s.client.instanceID)
	return getWithQuery[ListPayinsResponse](ctx, s.client, path, query)
}

// Get retrieves a payin by ID.
func (s *PayinsService) Get(ctx context.Context, payinID string) (*Payin, error) {
	if payinID == "" {
		return nil, fmt.Errorf("payinID is required")
	}

	path := fmt.Sprintf(payinPath, s.client.instanceID, payinID)
	return get[Payin](ctx, s.client, path)
}

// GetTrack retrieves a payin's tracking information through the
// externally shareable tracking endpoint.
func (s *PayinsService) GetTrack(ctx context.Context, payinID string) (*Payin, error) {
	if payinID == "" {
		return nil, fmt.Errorf("payinID is required")
	}

	path := fmt.Sprintf(payinTrackPath, payinID)
	return get[Payin](ctx, s.client, path)
}

// CreateEVM executes a payin quote settling to an EVM wallet.
func (s *PayinsService) CreateEVM(ctx context.Context, input CreateEVMPayinInput) (*Payin, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create evm payin input: %w", err)
	}

	path := fmt.Sprintf(evmPayinPath, s.client.instanceID)
	return post[Payin](ctx, s.client, path, input)
}
