package blindpay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_VirtualAccountsService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("list virtual accounts missing receiver id", func(t *testing.T) {
		client, _ := newClientWithMocks(t)
		accounts, err := client.VirtualAccounts.List(ctx, "")
		assert.EqualError(t, err, "receiverID is required")
		assert.Nil(t, accounts)
	})

	t.Run("list virtual accounts successful", func(t *testing.T) {
		successResponse := `[
			{
				"id": "va_123",
				"banking_partner": "jpmorgan",
				"kyc_status": "approved",
				"token": "USDC",
				"blockchain_wallet_id": "bw_123",
				"us": {
					"ach": {"routing_number": "021000021", "account_number": "900123456"},
					"wire": {"routing_number": "021000021", "account_number": "900123456"},
					"rtp": {"routing_number": "021000021", "account_number": "900123456"},
					"swift_bic_code": "CHASUS33",
					"account_type": "checking",
					"beneficiary": {"name": "Jane Doe", "address_line_1": "270 Park Ave", "address_line_2": ""},
					"receiving_bank": {"name": "JPMorgan Chase", "address_line_1": "270 Park Ave", "address_line_2": ""}
				}
			}
		]`
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(successResponse)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/receivers/re_123/virtual-accounts", req.URL.String())
				assert.Equal(t, http.MethodGet, req.Method)
			}).
			Once()

		accounts, err := client.VirtualAccounts.List(ctx, "re_123")
		assert.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "va_123", accounts[0].ID)
		assert.Equal(t, BankingPartnerJPMorgan, accounts[0].BankingPartner)
		assert.Equal(t, "021000021", accounts[0].US.ACH.RoutingNumber)
		assert.Equal(t, "CHASUS33", accounts[0].US.SwiftBicCode)
		assert.Equal(t, "Jane Doe", accounts[0].US.Beneficiary.Name)
	})
}

func Test_VirtualAccountsService_Create(t *testing.T) {
	ctx := context.Background()
	validInput := CreateVirtualAccountInput{
		ReceiverID:         "re_123",
		BankingPartner:     BankingPartnerJPMorgan,
		Token:              StablecoinTokenUSDC,
		BlockchainWalletID: "bw_123",
	}

	t.Run("create virtual account error", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		testError := errors.New("test error")
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(nil, testError).
			Once()

		account, err := client.VirtualAccounts.Create(ctx, validInput)
		assert.EqualError(t, err, "making HTTP request: test error")
		assert.Nil(t, account)
	})

	t.Run("create virtual account fails to validate input", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		account, err := client.VirtualAccounts.Create(ctx, CreateVirtualAccountInput{})
		assert.EqualError(t, err, "validating create virtual account input: receiver_id is required")
		assert.Nil(t, account)

		input := validInput
		input.BankingPartner = "hsbc"
		account, err = client.VirtualAccounts.Create(ctx, input)
		assert.EqualError(t, err, `validating create virtual account input: invalid banking partner "hsbc"`)
		assert.Nil(t, account)

		input = validInput
		input.BlockchainWalletID = ""
		account, err = client.VirtualAccounts.Create(ctx, input)
		assert.EqualError(t, err, "validating create virtual account input: blockchain_wallet_id is required")
		assert.Nil(t, account)
	})

	t.Run("create virtual account api error", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusUnprocessableEntity,
				Body:       io.NopCloser(bytes.NewBufferString(`{"message": "Receiver KYC not approved", "code": "kyc_pending"}`)),
			}, nil).
			Once()

		account, err := client.VirtualAccounts.Create(ctx, validInput)
		assert.EqualError(t, err, "BlindPay API error [kyc_pending] = Receiver KYC not approved")
		assert.Nil(t, account)
	})

	t.Run("create virtual account successful", func(t *testing.T) {
		successResponse := `{
			"id": "va_123",
			"banking_partner": "jpmorgan",
			"kyc_status": "approved",
			"token": "USDC",
			"blockchain_wallet_id": "bw_123",
			"blockchain_wallet": {"network": "base", "address": "0x52908400098527886E0F7030069857D2E4169EE7"},
			"us": {
				"ach": {"routing_number": "021000021", "account_number": "900123456"},
				"wire": {"routing_number": "021000021", "account_number": "900123456"},
				"rtp": {"routing_number": "021000021", "account_number": "900123456"},
				"swift_bic_code": "CHASUS33",
				"account_type": "checking",
				"beneficiary": {"name": "Jane Doe", "address_line_1": "270 Park Ave", "address_line_2": ""},
				"receiving_bank": {"name": "JPMorgan Chase", "address_line_1": "270 Park Ave", "address_line_2": ""}
			}
		}`
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(bytes.NewBufferString(successResponse)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/receivers/re_123/virtual-accounts", req.URL.String())
				assert.Equal(t, http.MethodPost, req.Method)
			}).
			Once()

		account, err := client.VirtualAccounts.Create(ctx, validInput)
		assert.NoError(t, err)
		assert.Equal(t, "va_123", account.ID)
		require.NotNil(t, account.BlockchainWallet)
		assert.Equal(t, NetworkBase, account.BlockchainWallet.Network)
	})
}

func Test_VirtualAccountsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("get virtual account missing ids", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		account, err := client.VirtualAccounts.Get(ctx, "", "va_123")
		assert.EqualError(t, err, "receiverID is required")
		assert.Nil(t, account)

		account, err = client.VirtualAccounts.Get(ctx, "re_123", "")
		assert.EqualError(t, err, "virtualAccountID is required")
		assert.Nil(t, account)
	})

	t.Run("get virtual account successful", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id": "va_123", "banking_partner": "citi", "token": "USDT"}`)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/receivers/re_123/virtual-accounts/va_123", req.URL.String())
				assert.Equal(t, http.MethodGet, req.Method)
			}).
			Once()

		account, err := client.VirtualAccounts.Get(ctx, "re_123", "va_123")
		assert.NoError(t, err)
		assert.Equal(t, "va_123", account.ID)
		assert.Equal(t, BankingPartnerCiti, account.BankingPartner)
	})
}

func Test_VirtualAccountsService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("update virtual account fails to validate input", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		err := client.VirtualAccounts.Update(ctx, UpdateVirtualAccountInput{ID: "va_123", Token: StablecoinTokenUSDC, BlockchainWalletID: "bw_123"})
		assert.EqualError(t, err, "validating update virtual account input: receiver_id is required")

		err = client.VirtualAccounts.Update(ctx, UpdateVirtualAccountInput{ReceiverID: "re_123", Token: StablecoinTokenUSDC, BlockchainWalletID: "bw_123"})
		assert.EqualError(t, err, "validating update virtual account input: id is required")
	})

	t.Run("update virtual account successful", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/receivers/re_123/virtual-accounts/va_123", req.URL.String())
				assert.Equal(t, http.MethodPut, req.Method)
			}).
			Once()

		err := client.VirtualAccounts.Update(ctx, UpdateVirtualAccountInput{
			ReceiverID:         "re_123",
			ID:                 "va_123",
			Token:              StablecoinTokenUSDB,
			BlockchainWalletID: "bw_456",
		})
		assert.NoError(t, err)
	})
}
