package blindpay

import (
	"context"
	"fmt"
)

const (
	quotesPath  = "/instances/%s/quotes"
	quoteFxPath = "/instances/%s/quotes/fx"
)

// NetworkInfo identifies the chain a quote's contract call targets.
type NetworkInfo struct {
	Name    string `json:"name"`
	ChainID uint64 `json:"chainId"`
}

// ContractInfo carries everything needed to execute a quote on-chain:
// the approval contract, its ABI, and the exact amount to approve.
type ContractInfo struct {
	ABI                     []map[string]any `json:"abi"`
	Address                 string           `json:"address"`
	FunctionName            string           `json:"functionName"`
	BlindpayContractAddress string           `json:"blindpayContractAddress"`
	Amount                  string           `json:"amount"`
	Network                 NetworkInfo      `json:"network"`
}

// CreateQuoteInput locks an FX rate for a payout to a bank account.
type CreateQuoteInput struct {
	BankAccountID           string                  `json:"bank_account_id"`
	CurrencyType            CurrencyType            `json:"currency_type"`
	CoverFees               bool                    `json:"cover_fees"`
	RequestAmount           float64                 `json:"request_amount"`
	Network                 Network                 `json:"network"`
	Token                   StablecoinToken         `json:"token,omitempty"`
	Description             string                  `json:"description,omitempty"`
	PartnerFeeID            string                  `json:"partner_fee_id,omitempty"`
	TransactionDocumentFile string                  `json:"transaction_document_file,omitempty"`
	TransactionDocumentID   string                  `json:"transaction_document_id,omitempty"`
	TransactionDocumentType TransactionDocumentType `json:"transaction_document_type,omitempty"`
}

func (i CreateQuoteInput) Validate() error {
	if i.BankAccountID == "" {
		return fmt.Errorf("bank_account_id is required")
	}
	if err := i.CurrencyType.Validate(); err != nil {
		return err
	}
	if err := validateAmount(i.RequestAmount); err != nil {
		return err
	}
	if err := i.Network.Validate(); err != nil {
		return err
	}
	if i.Token != "" {
		if err := i.Token.Validate(); err != nil {
			return err
		}
	}
	if i.TransactionDocumentType != "" {
		if err := i.TransactionDocumentType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CreateQuoteResponse is a locked quote. ExpiresAt is a Unix timestamp
// in milliseconds; the quote must be executed before it passes.
type CreateQuoteResponse struct {
	ID                  string        `json:"id"`
	ExpiresAt           int64         `json:"expires_at"`
	CommercialQuotation float64       `json:"commercial_quotation"`
	BlindpayQuotation   float64       `json:"blindpay_quotation"`
	ReceiverAmount      float64       `json:"receiver_amount"`
	SenderAmount        float64       `json:"sender_amount"`
	PartnerFeeAmount    *float64      `json:"partner_fee_amount,omitempty"`
	FlatFee             *float64      `json:"flat_fee,omitempty"`
	Contract            *ContractInfo `json:"contract,omitempty"`
	ReceiverLocalAmount *float64      `json:"receiver_local_amount,omitempty"`
	Description         string        `json:"description,omitempty"`
}

// GetFxRateInput previews the conversion rate between a stablecoin and
// a payout currency without locking a quote.
type GetFxRateInput struct {
	CurrencyType  CurrencyType    `json:"currency_type"`
	From          StablecoinToken `json:"from"`
	To            Currency        `json:"to"`
	RequestAmount float64         `json:"request_amount"`
}

func (i GetFxRateInput) Validate() error {
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

// GetFxRateResponse is an indicative rate preview.
type GetFxRateResponse struct {
	CommercialQuotation   float64  `json:"commercial_quotation"`
	BlindpayQuotation     float64  `json:"blindpay_quotation"`
	ResultAmount          float64  `json:"result_amount"`
	InstanceFlatFee       *float64 `json:"instance_flat_fee,omitempty"`
	InstancePercentageFee float64  `json:"instance_percentage_fee"`
}

// QuotesService creates payout quotes and rate previews.
type QuotesService struct {
	client *Client
}

// Create locks a quote for a payout.
func (s *QuotesService) Create(ctx context.Context, input CreateQuoteInput) (*CreateQuoteResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create quote input: %w", err)
	}

	path := fmt.Sprintf(quotesPath, s.client.instanceID)
	return post[CreateQuoteResponse](ctx, s.client, path, input)
}

// GetFxRate previews the FX rate for a conversion.
func (s *QuotesService) GetFxRate(ctx context.Context, input GetFxRateInput) (*GetFxRateResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating get fx rate input: %w", err)
	}

	path := fmt.Sprintf(quoteFxPath, s.client.instanceID)
	return post[GetFxRateResponse](ctx, s.client, path, input)
}
