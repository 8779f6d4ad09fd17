package blindpay

import (
	"context"
	"fmt"
)

const (
	blockchainWalletsPath       = "/instances/%s/receivers/%s/blockchain-wallets"
	blockchainWalletPath        = "/instances/%s/receivers/%s/blockchain-wallets/%s"
	blockchainWalletSignMsgPath = "/instances/%s/receivers/%s/blockchain-wallets/sign-message"
)

// BlockchainWallet is a receiver-owned wallet payins settle into and
// payouts draw from. Ownership is proven either by registering an
// account-abstraction address or by signing a challenge message.
type BlockchainWallet struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Network              Network `json:"network"`
	Address              string  `json:"address,omitempty"`
	SignatureTxHash      string  `json:"signature_tx_hash,omitempty"`
	IsAccountAbstraction bool    `json:"is_account_abstraction"`
	ReceiverID           string  `json:"receiver_id"`
}

type CreateBlockchainWalletWithAddressInput struct {
	ReceiverID string  `json:"receiver_id"`
	Name       string  `json:"name"`
	Network    Network `json:"network"`
	Address    string  `json:"address"`
}

func (i CreateBlockchainWalletWithAddressInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := i.Network.Validate(); err != nil {
		return err
	}
	if i.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

type CreateBlockchainWalletWithHashInput struct {
	ReceiverID      string  `json:"receiver_id"`
	Name            string  `json:"name"`
	Network         Network `json:"network"`
	SignatureTxHash string  `json:"signature_tx_hash"`
}

func (i CreateBlockchainWalletWithHashInput) Validate() error {
	if i.ReceiverID == "" {
		return fmt.Errorf("receiver_id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := i.Network.Validate(); err != nil {
		return err
	}
	if i.SignatureTxHash == "" {
		return fmt.Errorf("signature_tx_hash is required")
	}
	return nil
}

type createWalletWithAddressRequest struct {
	CreateBlockchainWalletWithAddressInput
	IsAccountAbstraction bool `json:"is_account_abstraction"`
}

type createWalletWithHashRequest struct {
	CreateBlockchainWalletWithHashInput
	IsAccountAbstraction bool `json:"is_account_abstraction"`
}

// GetSignMessageResponse is the challenge a receiver signs to prove
// wallet ownership.
type GetSignMessageResponse struct {
	Message string `json:"message"`
}

// BlockchainWalletsService manages a receiver's blockchain wallets.
type BlockchainWalletsService struct {
	client *Client
}

// List returns the receiver's blockchain wallets.
func (s *BlockchainWalletsService) List(ctx context.Context, receiverID string) ([]BlockchainWallet, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(blockchainWalletsPath, s.client.instanceID, receiverID)
	wallets, err := get[[]BlockchainWallet](ctx, s.client, path)
	if err != nil {
		return nil, err
	}
	return *wallets, nil
}

// CreateWithAddress registers an account-abstraction wallet by address.
func (s *BlockchainWalletsService) CreateWithAddress(ctx context.Context, input CreateBlockchainWalletWithAddressInput) (*BlockchainWallet, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create blockchain wallet input: %w", err)
	}

	path := fmt.Sprintf(blockchainWalletsPath, s.client.instanceID, input.ReceiverID)
	return post[BlockchainWallet](ctx, s.client, path, createWalletWithAddressRequest{input, true})
}

// CreateWithHash registers a wallet by the transaction hash of a signed
// challenge message. See GetSignMessage.
func (s *BlockchainWalletsService) CreateWithHash(ctx context.Context, input CreateBlockchainWalletWithHashInput) (*BlockchainWallet, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validating create blockchain wallet input: %w", err)
	}

	path := fmt.Sprintf(blockchainWalletsPath, s.client.instanceID, input.ReceiverID)
	return post[BlockchainWallet](ctx, s.client, path, createWalletWithHashRequest{input, false})
}

// GetSignMessage returns the ownership challenge for the receiver.
func (s *BlockchainWalletsService) GetSignMessage(ctx context.Context, receiverID string) (*GetSignMessageResponse, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}

	path := fmt.Sprintf(blockchainWalletSignMsgPath, s.client.instanceID, receiverID)
	return get[GetSignMessageResponse](ctx, s.client, path)
}

// Get returns a blockchain wallet by ID.
func (s *BlockchainWalletsService) Get(ctx context.Context, receiverID, walletID string) (*BlockchainWallet, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("receiverID is required")
	}
	if walletID == "" {
		return nil, fmt.Errorf("walletID is required")
	}

	path := fmt.Sprintf(blockchainWalletPath, s.client.instanceID, receiverID, walletID)
	return get[BlockchainWallet](ctx, s.client, path)
}

// Delete removes a blockchain wallet.
func (s *BlockchainWalletsService) Delete(ctx context.Context, receiverID, walletID string) error {
	if receiverID == "" {
		return fmt.Errorf("receiverID is required")
	}
	if walletID == "" {
		return fmt.Errorf("walletID is required")
	}

	path := fmt.Sprintf(blockchainWalletPath, s.client.instanceID, receiverID, walletID)
	return del(ctx, s.client, path)
}
