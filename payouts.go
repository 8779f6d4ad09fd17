package blindpay

import (
	"context"
	"fmt"
)

const (
	payoutsPath       = "/instances/%s/payouts"
	payoutPath        = "/instances/%s/payouts/%s"
	payoutTrackPath   = "/e/payouts/%s"
	stellarPayoutPath = "/instances/%s/payouts/stellar"
	evmPayoutPath     = "/instances/%s/payouts/evm"
	solanaPayoutPath  = "/instances/%s/payouts/solana"
)

// Payout is a stablecoin-to-fiat payment delivered to a receiver's bank
// account. Amounts are denominated in the sender and receiver
// currencies of the quote that created it.
type Payout struct {
	ReceiverID          string            `json:"receiver_id"`
	ID                  string            `json:"id"`
	Status              TransactionStatus `json:"status"`
	SenderWalletAddress string            `json:"sender_wallet_address"`
	SignedTransaction   string            `json:"signed_transaction"`
	QuoteID             string            `json:"quote_id"`
	InstanceID          string            `json:"instance_id"`

	TrackingTransaction PayoutTrackingTransaction `json:"tracking_transaction"`
	TrackingPayment     PayoutTrackingPayment     `json:"tracking_payment"`
	TrackingLiquidity   PayoutTrackingLiquidity   `json:"tracking_liquidity"`
	TrackingComplete    PayoutTrackingComplete    `json:"tracking_complete"`
	TrackingPartnerFee  PayoutTrackingPartnerFee  `json:"tracking_partner_fee"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	ImageURL  string `json:"image_url,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	LegalName string `json:"legal_name,omitempty"`

	Network             Network         `json:"network"`
	Token               StablecoinToken `json:"token"`
	Description         string          `json:"description"`
	SenderAmount        float64         `json:"sender_amount"`
	ReceiverAmount      float64         `json:"receiver_amount"`
	PartnerFeeAmount    float64         `json:"partner_fee_amount"`
	CommercialQuotation float64         `json:"commercial_quotation"`
	BlindpayQuotation   float64         `json:"blindpay_quotation"`
	TotalFeeAmount      float64         `json:"total_fee_amount"`
	ReceiverLocalAmount float64         `json:"receiver_local_amount"`
	Currency            Currency        `json:"currency"`
}

// ListPayoutsResponse is one page of payouts.
type ListPayoutsResponse struct {
	Data       []Payout   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateStellarPayoutInput executes a quote from a Stellar wallet.
type CreateStellarPayoutInput struct {
	QuoteID             string `json:"quote_id"`
	SenderWalletAddress string `json:"sender_wallet_address"`
	SignedTransaction   string `json:"signed_transaction,omitempty"`
}

func (i CreateStellarPayoutInput) Validate() error {
	if i.QuoteID == "" {
		return fmt.Errorf("quote_id is required")
	}
	return validateStellarAddress(i.SenderWalletAddress)
}

// CreateEVMPayoutInput executes a quote from an EVM wallet.
type CreateEVMPayoutInput struct {
	QuoteID             string `json:"quote_id"`
	SenderWalletAddress string `json:"sender_wallet_address"`
}

func (i CreateEVMPayoutInput) Validate() error {
	if i.QuoteID == "" {
		return fmt.Errorf("quote_id is required")
	}
	return validateEVMAddress(i.SenderWalletAddress)
}

// CreateSolanaPayoutInput executes a quote from a Solana wallet.
type CreateSolanaPayoutInput struct {
	QuoteID             string `json:"quote_id"`
	SenderWalletAddress string `json:"sender_wallet_address"`
	SignedTransaction   string `json:"signed_transaction,omitempty"`
}

func (i CreateSolanaPayoutInput) Validate() error {
	if i.QuoteID == "" {
		return fmt.Errorf("quote_id is required")
	}
	return validateSolanaAddress(i.SenderWalletAddress)
}

// CreatePayoutResponse is the API's acknowledgment of a new payout.
// Tracking objects are nil until the matching step has started.
type CreatePayoutResponse struct {
	ID                  string                     `json:"id"`
	Status              TransactionStatus          `json:"status"`
	SenderWalletAddress string                     `json:"sender_wallet_address"`
	TrackingComplete    *PayoutTrackingComplete    `json:"tracking_complete,omitempty"`
	TrackingPayment     *PayoutTrackingPayment     `json:"tracking_payment,omitempty"`
	TrackingTransaction *PayoutTrackingTransaction `json:"tracking_transaction,omitempty"`
	TrackingPartnerFee  *PayoutTrackingPartnerFee  `json:"tracking_partner_fee,omitempty"`
	TrackingLiquidity   *PayoutTrackingLiquidity   `json:"tracking_liquidity,omitempty"`
	ReceiverID          string                     `json:"receiver_id"`
}

// PayoutsService manages the payouts of an instance.
type PayoutsService struct {
	client *Client
}

// List returns one page of payouts.
func (s *PayoutsService) List(ctx context.Context, opts *ListOptions) (*ListPayoutsResponse, error) {
	query, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf(payoutsPath, s.client.instanceID)
	return getWithQuery[ListPayoutsResponse](ctx, s.client, path, query)
}

// Get retrieves a payout by ID.
func (s *PayoutsService) Get(ctx context.Context, payoutID string) (*Payout, error) {
	if payoutID == "" {
		return nil, fmt.Errorf("payoutID is required")
	}

	path := fmt.Sprintf(payoutPath, s.client.instanceID, payoutID)
	return get[Payout](ctx, s.client, path)
}

// GetTrack retrieves a payout's tracking information through the
// externally shareable tracking endpoint.
func (s *PayoutsService) GetTrack(ctx context.Context, payoutID string) (*Payout, error) {
	if payoutID == "" {
		return nil, fmt.Errorf("payoutID is required")
	}

	path := fmt.Sprintf(payoutTrackPath, payoutID)
	return get[Payout](ctx, s.client, path)
}

// CreateStellar executes a quote with a payout funded from a Stellar
// wallet.
func (s *PayoutsService) CreateStellar(ctx context.Context, input CreateStellarPayoutInput) (*CreatePayoutResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create stellar payout input: %w", err)
	}

	path := fmt.Sprintf(stellarPayoutPath, s.client.instanceID)
	return post[CreatePayoutResponse](ctx, s.client, path, input)
}

// CreateEVM executes a quote with a payout funded from an EVM wallet.
func (s *PayoutsService) CreateEVM(ctx context.Context, input CreateEVMPayoutInput) (*CreatePayoutResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create evm payout input: %w", err)
	}

	path := fmt.Sprintf(evmPayoutPath, s.client.instanceID)
	return post[CreatePayoutResponse](ctx, s.client, path, input)
}

// CreateSolana executes a quote with a payout funded from a Solana
// wallet.
func (s *PayoutsService) CreateSolana(ctx context.Context, input CreateSolanaPayoutInput) (*CreatePayoutResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create solana payout input: %w", err)
	}

	path := fmt.Sprintf(solanaPayoutPath, s.client.instanceID)
	return post[CreatePayoutResponse](ctx, s.client, path, input)
}
