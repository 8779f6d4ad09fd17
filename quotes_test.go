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

func Test_QuotesService_Create(t *testing.T) {
	ctx := context.Background()
	validInput := CreateQuoteInput{
		BankAccountID: "ba_123",
		CurrencyType:  CurrencyTypeSender,
		CoverFees:     false,
		RequestAmount: 1000,
		Network:       NetworkBase,
		Token:         StablecoinTokenUSDC,
	}

	t.Run("create quote error", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		testError := errors.New("test error")
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(nil, testError).
			Once()

		quote, err := client.Quotes.Create(ctx, validInput)
		assert.EqualError(t, err, "making HTTP request: test error")
		assert.Nil(t, quote)
	})

	t.Run("create quote fails to validate input", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		quote, err := client.Quotes.Create(ctx, CreateQuoteInput{})
		assert.EqualError(t, err, "validating create quote input: bank_account_id is required")
		assert.Nil(t, quote)

		input := validInput
		input.RequestAmount = 0
		quote, err = client.Quotes.Create(ctx, input)
		assert.EqualError(t, err, "validating create quote input: the provided amount must be greater than zero")
		assert.Nil(t, quote)

		input = validInput
		input.Network = "bitcoin"
		quote, err = client.Quotes.Create(ctx, input)
		assert.EqualError(t, err, `validating create quote input: invalid network "bitcoin"`)
		assert.Nil(t, quote)
	})

	t.Run("create quote api error", func(t *testing.T) {
		errorResponse := `{"message": "Bank account not found", "code": "not_found"}`
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(bytes.NewBufferString(errorResponse)),
			}, nil).
			Once()

		quote, err := client.Quotes.Create(ctx, validInput)
		assert.EqualError(t, err, "BlindPay API error [not_found] = Bank account not found")
		assert.Nil(t, quote)
	})

	t.Run("create quote successful", func(t *testing.T) {
		successResponse := `{
			"id": "qu_123",
			"expires_at": 1743600000000,
			"commercial_quotation": 5.04,
			"blindpay_quotation": 5.01,
			"receiver_amount": 5010,
			"sender_amount": 1000,
			"partner_fee_amount": 2.5,
			"flat_fee": 0.5,
			"contract": {
				"abi": [{"name": "approve", "type": "function"}],
				"address": "0x1111111111111111111111111111111111111111",
				"functionName": "approve",
				"blindpayContractAddress": "0x2222222222222222222222222222222222222222",
				"amount": "1000000000",
				"network": {"name": "base", "chainId": 8453}
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

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/quotes", req.URL.String())
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "Bearer test-api-key", req.Header.Get("Authorization"))
			}).
			Once()

		quote, err := client.Quotes.Create(ctx, validInput)
		assert.NoError(t, err)
		assert.Equal(t, "qu_123", quote.ID)
		assert.Equal(t, int64(1743600000000), quote.ExpiresAt)
		require.NotNil(t, quote.PartnerFeeAmount)
		assert.Equal(t, 2.5, *quote.PartnerFeeAmount)
		require.NotNil(t, quote.Contract)
		assert.Equal(t, "approve", quote.Contract.FunctionName)
		assert.Equal(t, uint64(8453), quote.Contract.Network.ChainID)
		assert.Equal(t, "1000000000", quote.Contract.Amount)
	})
}

func Test_QuotesService_GetFxRate(t *testing.T) {
	ctx := context.Background()
	validInput := GetFxRateInput{
		CurrencyType:  CurrencyTypeSender,
		From:          StablecoinTokenUSDC,
		To:            CurrencyBRL,
		RequestAmount: 1000,
	}

	t.Run("get fx rate fails to validate input", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		rate, err := client.Quotes.GetFxRate(ctx, GetFxRateInput{})
		assert.EqualError(t, err, `validating get fx rate input: invalid currency type ""`)
		assert.Nil(t, rate)

		input := validInput
		input.From = "DOGE"
		rate, err = client.Quotes.GetFxRate(ctx, input)
		assert.EqualError(t, err, `validating get fx rate input: invalid stablecoin token "DOGE"`)
		assert.Nil(t, rate)
	})

	t.Run("get fx rate api error", func(t *testing.T) {
		errorResponse := `{"message": "Unsupported currency pair", "code": "unsupported_pair"}`
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusBadRequest,
				Body:       io.NopCloser(bytes.NewBufferString(errorResponse)),
			}, nil).
			Once()

		rate, err := client.Quotes.GetFxRate(ctx, validInput)
		assert.EqualError(t, err, "BlindPay API error [unsupported_pair] = Unsupported currency pair")
		assert.Nil(t, rate)
	})

	t.Run("get fx rate successful", func(t *testing.T) {
		successResponse := `{
			"commercial_quotation": 5.04,
			"blindpay_quotation": 5.01,
			"result_amount": 5010,
			"instance_flat_fee": 0.5,
			"instance_percentage_fee": 0.25
		}`
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

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/quotes/fx", req.URL.String())
				assert.Equal(t, http.MethodPost, req.Method)
			}).
			Once()

		rate, err := client.Quotes.GetFxRate(ctx, validInput)
		assert.NoError(t, err)
		assert.Equal(t, 5.04, rate.CommercialQuotation)
		assert.Equal(t, 5010.0, rate.ResultAmount)
		require.NotNil(t, rate.InstanceFlatFee)
		assert.Equal(t, 0.5, *rate.InstanceFlatFee)
		assert.Equal(t, 0.25, rate.InstancePercentageFee)
	})
}
