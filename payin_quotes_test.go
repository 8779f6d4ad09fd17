package blindpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_PayinQuotesService_Create(t *testing.T) {
	ctx := context.Background()
	validInput := CreatePayinQuoteInput{
		BlockchainWalletID: "bw_123",
		CurrencyType:       CurrencyTypeSender,
		PaymentMethod:      PayinPaymentMethodPix,
		RequestAmount:      5000,
		Token:              StablecoinTokenUSDC,
	}

	t.Run("create payin quote error", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		testError := errors.New("test error")
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(nil, testError).
			Once()

		quote, err := client.PayinQuotes.Create(ctx, validInput)
		assert.EqualError(t, err, "making HTTP request: test error")
		assert.Nil(t, quote)
	})

	t.Run("create payin quote fails to validate input", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		quote, err := client.PayinQuotes.Create(ctx, CreatePayinQuoteInput{})
		assert.EqualError(t, err, "validating create payin quote input: blockchain_wallet_id is required")
		assert.Nil(t, quote)

		input := validInput
		input.PaymentMethod = "cash"
		quote, err = client.PayinQuotes.Create(ctx, input)
		assert.EqualError(t, err, `validating create payin quote input: invalid payin payment method "cash"`)
		assert.Nil(t, quote)
	})

	t.Run("create payin quote api error", func(t *testing.T) {
		errorResponse := `{"message": "Blockchain wallet not found", "code": "not_found"}`
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(bytes.NewBufferString(errorResponse)),
			}, nil).
			Once()

		quote, err := client.PayinQuotes.Create(ctx, validInput)
		assert.EqualError(t, err, "BlindPay API error [not_found] = Blockchain wallet not found")
		assert.Nil(t, quote)
	})

	t.Run("create payin quote successful", func(t *testing.T) {
		successResponse := `{
			"id": "pq_123",
			"expires_at": 1743600000000,
			"commercial_quotation": 5.04,
			"blindpay_quotation": 5.01,
			"receiver_amount": 995.5,
			"sender_amount": 5000,
			"flat_fee": 0.5,
			"is_otc": false
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

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/payin-quotes", req.URL.String())
				assert.Equal(t, http.MethodPost, req.Method)

				var body map[string]any
				require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
				assert.Equal(t, "pix", body["payment_method"])
				assert.NotContains(t, body, "payer_rules")
				assert.NotContains(t, body, "is_otc")
			}).
			Once()

		quote, err := client.PayinQuotes.Create(ctx, validInput)
		assert.NoError(t, err)
		assert.Equal(t, "pq_123", quote.ID)
		assert.Equal(t, 0.5, quote.FlatFee)
		require.NotNil(t, quote.IsOtc)
		assert.False(t, *quote.IsOtc)
		assert.Nil(t, quote.PartnerFeeAmount)
	})

	t.Run("create payin quote forwards payer rules", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id": "pq_456", "expires_at": 1743600000000, "flat_fee": 0.5}`)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				var body map[string]any
				require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
				rules, ok := body["payer_rules"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, []any{"12345678909"}, rules["pix_allowed_tax_ids"])
			}).
			Once()

		input := validInput
		input.PayerRules = &PayerRules{PixAllowedTaxIDs: []string{"12345678909"}}
		quote, err := client.PayinQuotes.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "pq_456", quote.ID)
	})
}

func Test_PayinQuotesService_GetFxRate(t *testing.T) {
	ctx := context.Background()
	validInput := GetPayinFxRateInput{
		CurrencyType:  CurrencyTypeSender,
		From:          CurrencyBRL,
		To:            CurrencyUSDC,
		RequestAmount: 5000,
	}

	t.Run("get payin fx rate fails to validate input", func(t *testing.T) {
		client, _ := newClientWithMocks(t)
		input := validInput
		input.RequestAmount = -1

		rate, err := client.PayinQuotes.GetFxRate(ctx, input)
		assert.EqualError(t, err, "validating get payin fx rate input: the provided amount must be greater than zero")
		assert.Nil(t, rate)
	})

	t.Run("get payin fx rate successful", func(t *testing.T) {
		successResponse := `{
			"commercial_quotation": 5.04,
			"blindpay_quotation": 5.01,
			"result_amount": 995.5,
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

				assert.Equal(t, "https://api.blindpay.example.com/v1/instances/in_123/payin-quotes/fx", req.URL.String())
				assert.Equal(t, http.MethodPost, req.Method)
			}).
			Once()

		rate, err := client.PayinQuotes.GetFxRate(ctx, validInput)
		assert.NoError(t, err)
		assert.Equal(t, 995.5, rate.ResultAmount)
		assert.Equal(t, 0.5, rate.InstanceFlatFee)
	})
}
