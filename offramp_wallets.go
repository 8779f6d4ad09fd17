package blindpay

import (
	"context"
	"fmt"
)

const (
	offrampWalletsPath = "/instances/%s/receivers/%s/bank-accounts/%s/offramp-wallets"
	offrampWalletPath  = "/instances/%s/receivers/%s/bank-accounts/%s/offramp-wallets/%s"
)

// OfframpWallet is a deposit address bound to a bank account. Funds
// sent to it are paid out over the account's rail automatically.
type OfframpWallet struct {
	ID            string `json:"id"`
	ExternalID    string `json:"external_id"`
	InstanceID    string `json:"instance_id"`
	ReceiverID    string `json:"receiver_id"`
	BankAccountID string `json:"bank_account_id"`
	Network       string `json:"network"`
	Address       string `json:"address"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type CreateOfframpWalletInput struct {
	ReceiverID    string `json:"receiver_id"`
	BankAccountID string `json:"bank_account_id"`
	ExternalID    string `json:"external_id"`
	Network       string `json:"network"`
}

func (i CreateOfframpWalletInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.BankAccountID == "" {
		return fmt.Errorf("bank_account_id is required")
	}
	if i.ExternalID == "" {
		return fmt.Errorf("external_id is required")
	}
	if i.Network == "" {
		return fmt.Errorf("network is required")
	}
	return nil
}

// OfframpWalletsService manages the offramp wallets of a bank account.
type OfframpWalletsService struct {
	client *Client
}

// List returns the bank account's offramp wallets.
func (s *OfframpWalletsService) List(ctx context.Context, receiverID, bankAccountID string) ([]OfframpWallet, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}
	if bankAccountID == "" {
		return nil, fmt.Errorf("bankAccountID is required")
	}

	path := fmt.Sprintf(offrampWalletsPath, s.client.instanceID, receiverID, bankAccountID)
	wallets, err := get[[]OfframpWallet](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *wallets, nil
}

// Create provisions an offramp wallet for the bank account.
func (s *OfframpWalletsService) Create(ctx context.Context, input CreateOfframpWalletInput) (*OfframpWallet, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create offramp wallet input: %w", err)
	}

	path := fmt.Sprintf(offrampWalletsPath, s.client.instanceID, input.ReceiverID, input.BankAccountID)
	return post[OfframpWallet](ctx, s.client, path, input)
}

// Get returns an offramp wallet by ID.
func (s *OfframpWalletsService) Get(ctx context.Context, receiverID, bankAccountID, walletID string) (*OfframpWallet, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}
	if bankAccountID == "" {
		return nil, fmt.Errorf("bankAccountID is required")
	}
	if walletID == "" {
		return nil, fmt.Errorf("walletID is required")
	}

	path := fmt.Sprintf(offrampWalletPath, s.client.instanceID, receiverID, bankAccountID, walletID)
	return get[OfframpWallet](ctx, s.client, path)
}
