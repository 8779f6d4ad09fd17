package blindpay

import (
	"context"
	"fmt"
)

const (
	virtualAccountsPath = "/instances/%s/receivers/%s/virtual-accounts"
	virtualAccountPath  = "/instances/%s/receivers/%s/virtual-accounts/%s"
)

// BankingPartner is the bank holding a virtual account.
type BankingPartner string

const (
	BankingPartnerJPMorgan BankingPartner = "jpmorgan"
	BankingPartnerCiti     BankingPartner = "citi"
)

func (p BankingPartner) Validate() error {
	switch p {
	case BankingPartnerJPMorgan, BankingPartnerCiti:
		return nil
	default:
		return fmt.Errorf("invalid banking partner %q", p)
	}
}

// BankingDetails is a routing/account number pair for one US rail.
type BankingDetails struct {
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`
}

// BeneficiaryInfo is the account holder as it appears on transfers.
type BeneficiaryInfo struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
}

// BankInfo is the receiving bank's name and address.
type BankInfo struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
}

// USBankingInfo carries the deposit instructions of a virtual account,
// one routing/account pair per rail.
type USBankingInfo struct {
	ACH           BankingDetails  `json:"ach"`
	Wire          BankingDetails  `json:"wire"`
	RTP           BankingDetails  `json:"rtp"`
	SwiftBicCode  string          `json:"swift_bic_code"`
	AccountType   string          `json:"account_type"`
	Beneficiary   BeneficiaryInfo `json:"beneficiary"`
	ReceivingBank BankInfo        `json:"receiving_bank"`
}

// BlockchainWalletInfo is the wallet funds are forwarded to.
type BlockchainWalletInfo struct {
	Network Network `json:"network"`
	Address string  `json:"address"`
}

// VirtualAccount is a named US bank account whose incoming deposits are
// converted to stablecoins and forwarded to a blockchain wallet.
type VirtualAccount struct {
	ID                 string                `json:"id"`
	BankingPartner     BankingPartner        `json:"banking_partner"`
	KYCStatus          string                `json:"kyc_status"`
	US                 USBankingInfo         `json:"us"`
	Token              StablecoinToken       `json:"token"`
	BlockchainWalletID string                `json:"blockchain_wallet_id"`
	BlockchainWallet   *BlockchainWalletInfo `json:"blockchain_wallet,omitempty"`
}

type CreateVirtualAccountInput struct {
	ReceiverID         string          `json:"receiver_id"`
	BankingPartner     BankingPartner  `json:"banking_partner"`
	Token              StablecoinToken `json:"token"`
	BlockchainWalletID string          `json:"blockchain_wallet_id"`
}

func (i CreateVirtualAccountInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if err := i.BankingPartner.Validate(); err != nil {
		return err
	}
	if err := i.Token.Validate(); err != nil {
		return err
	}
	if i.BlockchainWalletID == "" {
		return fmt.Errorf("blockchain_wallet_id is required")
	}
	return nil
}

type UpdateVirtualAccountInput struct {
	ReceiverID         string          `json:"receiver_id"`
	ID                 string          `json:"id"`
	Token              StablecoinToken `json:"token"`
	BlockchainWalletID string          `json:"blockchain_wallet_id"`
}

func (i UpdateVirtualAccountInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.ID == "" {
		return fmt.Errorf("id is required")
	}
	if err := i.Token.Validate(); err != nil {
		return err
	}
	if i.BlockchainWalletID == "" {
		return fmt.Errorf("blockchain_wallet_id is required")
	}
	return nil
}

// VirtualAccountsService manages a receiver's virtual bank accounts.
type VirtualAccountsService struct {
	client *Client
}

// List returns the receiver's virtual accounts.
func (s *VirtualAccountsService) List(ctx context.Context, receiverID string) ([]VirtualAccount, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(virtualAccountsPath, s.client.instanceID, receiverID)
	accounts, err := get[[]VirtualAccount](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *accounts, nil
}

// Get returns a virtual account by ID.
func (s *VirtualAccountsService) Get(ctx context.Context, receiverID, virtualAccountID string) (*VirtualAccount, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}
	if virtualAccountID == "" {
		return nil, fmt.Errorf("virtualAccountID is required")
	}

	path := fmt.Sprintf(virtualAccountPath, s.client.instanceID, receiverID, virtualAccountID)
	return get[VirtualAccount](ctx, s.client, path)
}

// Create opens a virtual account forwarding to the given wallet.
func (s *VirtualAccountsService) Create(ctx context.Context, input CreateVirtualAccountInput) (*VirtualAccount, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create virtual account input: %w", err)
	}

	path := fmt.Sprintf(virtualAccountsPath, s.client.instanceID, input.ReceiverID)
	return post[VirtualAccount](ctx, s.client, path, input)
}

// Update repoints a virtual account at a different token or wallet.
func (s *VirtualAccountsService) Update(ctx context.Context, input UpdateVirtualAccountInput) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("validating update virtual account input: %w", err)
	}

	path := fmt.Sprintf(virtualAccountPath, s.client.instanceID, input.ReceiverID, input.ID)
	_, err := put[struct{}](ctx, s.client, path, input)
	return err
}
