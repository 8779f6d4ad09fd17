package blindpay

import (
	"context"
	"fmt"
)

const (
	partnerFeesPath = "/instances/%s/partner-fees"
	partnerFeePath  = "/instances/%s/partner-fees/%s"
)

// PartnerFee is a named fee schedule applied on top of BlindPay's own
// fees. Collected fees settle to the partner's wallet addresses.
type PartnerFee struct {
	ID                   string  `json:"id"`
	InstanceID           string  `json:"instance_id"`
	Name                 string  `json:"name"`
	PayoutPercentageFee  float64 `json:"payout_percentage_fee"`
	PayoutFlatFee        float64 `json:"payout_flat_fee"`
	PayinPercentageFee   float64 `json:"payin_percentage_fee"`
	PayinFlatFee         float64 `json:"payin_flat_fee"`
	EVMWalletAddress     string  `json:"evm_wallet_address"`
	StellarWalletAddress string  `json:"stellar_wallet_address,omitempty"`
}

type CreatePartnerFeeInput struct {
	Name                 string  `json:"name"`
	PayoutPercentageFee  float64 `json:"payout_percentage_fee"`
	PayoutFlatFee        float64 `json:"payout_flat_fee"`
	PayinPercentageFee   float64 `json:"payin_percentage_fee"`
	PayinFlatFee         float64 `json:"payin_flat_fee"`
	EVMWalletAddress     string  `json:"evm_wallet_address"`
	StellarWalletAddress string  `json:"stellar_wallet_address,omitempty"`
	VirtualAccountSet    *bool   `json:"virtual_account_set,omitempty"`
}

func (i CreatePartnerFeeInput) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.PayoutPercentageFee < 0 || i.PayoutFlatFee < 0 || i.PayinPercentageFee < 0 || i.PayinFlatFee < 0 {
		return fmt.Errorf("fees cannot be negative")
	}
	if err := validateEVMAddress(i.EVMWalletAddress); err != nil {
		return err
	}
	if i.StellarWalletAddress != "" {
		if err := validateStellarAddress(i.StellarWalletAddress); err != nil {
			return err
		}
	}
	return nil
}

// PartnerFeesService manages the instance's partner fee schedules.
type PartnerFeesService struct {
	client *Client
}

// List returns all partner fees configured on the instance.
func (s *PartnerFeesService) List(ctx context.Context) ([]PartnerFee, error) {
	path := fmt.Sprintf(partnerFeesPath, s.client.instanceID)
	fees, err := get[[]PartnerFee](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *fees, nil
}

// Create registers a new partner fee schedule.
func (s *PartnerFeesService) Create(ctx context.Context, input CreatePartnerFeeInput) (*PartnerFee, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create partner fee input: %w", err)
	}

	path := fmt.Sprintf(partnerFeesPath, s.client.instanceID)
	return post[PartnerFee](ctx, s.client, path, input)
}

// Get returns a partner fee by ID.
func (s *PartnerFeesService) Get(ctx context.Context, partnerFeeID string) (*PartnerFee, error) {
	if partnerFeeID == "" {
		return nil, fmt.Errorf("partnerFeeID is required")
	}

	path := fmt.Sprintf(partnerFeePath, s.client.instanceID, partnerFeeID)
	return get[PartnerFee](ctx, s.client, path)
}

// Delete removes a partner fee schedule.
func (s *PartnerFeesService) Delete(ctx context.Context, partnerFeeID string) error {
	if partnerFeeID == "" {
		return fmt.Errorf("partnerFeeID is required")
	}

	path := fmt.Sprintf(partnerFeePath, s.client.instanceID, partnerFeeID)
	return del(ctx, s.client, path)
}
