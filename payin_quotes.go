package blindpay

import (
	"context"
	"fmt"
)

const (
	payinQuotesPath  = "/instances/%s/payin-quotes"
	payinQuoteFxPath = "/instances/%s/payin-quotes/fx"
)

// CreatePayinQuoteInput locks an FX rate for a payin into a blockchain
// wallet.
type CreatePayinQuoteInput struct {
	BlockchainWalletID string             `json:"blockchain_wallet_id"`
	CurrencyType       CurrencyType       `json:"currency_type"`
	PaymentMethod      PayinPaymentMethod `json:"payment_method"`
	RequestAmount      float64            `json:"request_amount"`
	Token              StablecoinToken    `json:"token"`
	IsOtc              *bool              `json:"is_otc,omitempty"`
	CoverFees          bool               `json:"cover_fees"`
	PartnerFeeID       string             `json:"partner_fee_id,omitempty"`
	PayerRules         *PayerRules        `json:"payer_rules,omitempty"`
}

func (i CreatePayinQuoteInput) Validate() error {
	if i.BlockchainWalletID == "" {
		return fmt.Errorf("blockchain_wallet_id is required")
	}
	if err := i.CurrencyType.Validate(); err != nil {
		return err
	}
	if err := i.PaymentMethod.Validate(); err != nil {
		return err
	}
	if err := validateAmount(i.RequestAmount); err != nil {
		return err
	}
	return i.Token.Validate()
}

// CreatePayinQuoteResponse is a locked payin quote. ExpiresAt is a Unix
// timestamp in milliseconds.
type CreatePayinQuoteResponse struct {
	ID                  string   `json:"id"`
	ExpiresAt           int64    `json:"expires_at"`
	CommercialQuotation float64  `json:"commercial_quotation"`
	BlindpayQuotation   float64  `json:"blindpay_quotation"`
	ReceiverAmount      float64  `json:"receiver_amount"`
	SenderAmount        float64  `json:"sender_amount"`
	PartnerFeeAmount    *float64 `json:"partner_fee_amount,omitempty"`
	FlatFee             float64  `json:"flat_fee"`
	IsOtc               *bool    `json:"is_otc,omitempty"`
}

// GetPayinFxRateInput previews the conversion rate between a payin
// currency and a stablecoin.
type GetPayinFxRateInput struct {
	CurrencyType  CurrencyType `json:"currency_type"`
	From          Currency     `json:"from"`
	To            Currency     `json:"to"`
	RequestAmount float64      `json:"request_amount"`
}

func (i GetPayinFxRateInput) Validate() error {
	if err := i.CurrencyType.Validate(); err != nil {
		return err
	}
	if err := i.From.Validate(); err != nil {
		return err
	}
	if err := i.To.Validate(); err != nil {
		return err
	}
	return validateAmount(i.RequestAmount)
}

// GetPayinFxRateResponse is an indicative payin rate preview.
type GetPayinFxRateResponse struct {
	CommercialQuotation   float64 `json:"commercial_quotation"`
	BlindpayQuotation     float64 `json:"blindpay_quotation"`
	ResultAmount          float64 `json:"result_amount"`
	InstanceFlatFee       float64 `json:"instance_flat_fee"`
	InstancePercentageFee float64 `json:"instance_percentage_fee"`
}

// PayinQuotesService creates payin quotes and rate previews.
type PayinQuotesService struct {
	client *Client
}

// Create locks a quote for a payin.
func (s *PayinQuotesService) Create(ctx context.Context, input CreatePayinQuoteInput) (*CreatePayinQuoteResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create payin quote input: %w", err)
	}

	path := fmt.Sprintf(payinQuotesPath, s.client.instanceID)
	return post[CreatePayinQuoteResponse](ctx, s.client, path, input)
}

// GetFxRate previews the FX rate for a payin conversion.
func (s *PayinQuotesService) GetFxRate(ctx context.Context, input GetPayinFxRateInput) (*GetPayinFxRateResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating get payin fx rate input: %w", err)
	}

	path := fmt.Sprintf(payinQuoteFxPath, s.client.instanceID)
	return post[GetPayinFxRateResponse](ctx, s.client, path, input)
}
