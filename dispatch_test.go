package blindpay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchPayload struct {
	ID string `json:"id"`
}

func Test_dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("request construction with body", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id": "ok_123"}`)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, "https://api.blindpay.example.com/v1/ping", req.URL.String())
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, "Bearer test-api-key", req.Header.Get("Authorization"))
				assert.Equal(t, "application/json", req.Header.Get("Accept"))
				assert.Equal(t, userAgent, req.Header.Get("User-Agent"))
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			}).
			Once()

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodPost, "/ping", nil, map[string]string{"hello": "world"})
		require.NoError(t, err)
		assert.Equal(t, "ok_123", payload.ID)
	})

	t.Run("request construction without body", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id": "ok_123"}`)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "Bearer test-api-key", req.Header.Get("Authorization"))
				assert.Empty(t, req.Header.Get("Content-Type"))
				assert.Nil(t, req.Body)
			}).
			Once()

		_, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", nil, nil)
		require.NoError(t, err)
	})

	t.Run("query parameters are appended", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
			}, nil).
			Run(func(args mock.Arguments) {
				req, ok := args.Get(0).(*http.Request)
				assert.True(t, ok)

				assert.Equal(t, "https://api.blindpay.example.com/v1/ping?limit=25&offset=50", req.URL.String())
			}).
			Once()

		query := url.Values{}
		query.Set("limit", "25")
		query.Set("offset", "50")
		_, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", query, nil)
		require.NoError(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		testError := errors.New("connection refused")
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(nil, testError).
			Once()

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", nil, nil)
		assert.Nil(t, payload)
		assert.EqualError(t, err, "making HTTP request: connection refused")

		var transportErr *TransportError
		assert.ErrorAs(t, err, &transportErr)
		assert.ErrorIs(t, err, testError)
	})

	t.Run("api error with code", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusNotFound,
				Body:       io.NopCloser(bytes.NewBufferString(`{"message": "Receiver not found", "code": "not_found"}`)),
			}, nil).
			Once()

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", nil, nil)
		assert.Nil(t, payload)
		assert.EqualError(t, err, "BlindPay API error [not_found] = Receiver not found")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "not_found", apiErr.Code)
		assert.Equal(t, "Receiver not found", apiErr.Message)
	})

	t.Run("api error with non-JSON body", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(bytes.NewBufferString("Internal Server Error")),
			}, nil).
			Once()

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", nil, nil)
		assert.Nil(t, payload)
		assert.EqualError(t, err, "BlindPay API error (status 500): Internal Server Error")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Internal Server Error", apiErr.RawBody)
	})

	t.Run("empty success body decodes to zero value", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil).
			Once()

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodDelete, "/ping", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, &dispatchPayload{}, payload)
	})

	t.Run("malformed success body", func(t *testing.T) {
		client, mocks := newClientWithMocks(t)
		mocks.httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{invalid")),
			}, nil).
			Once()

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", nil, nil)
		assert.Nil(t, payload)

		var serErr *SerializationError
		require.ErrorAs(t, err, &serErr)
		assert.Equal(t, "decoding", serErr.Op)
	})

	t.Run("unencodable request body fails before any HTTP call", func(t *testing.T) {
		client, _ := newClientWithMocks(t)

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodPost, "/ping", nil, make(chan int))
		assert.Nil(t, payload)

		var serErr *SerializationError
		require.ErrorAs(t, err, &serErr)
		assert.Equal(t, "encoding", serErr.Op)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		client, err := NewWithOptions(ClientOptions{
			APIKey:     "test-api-key",
			InstanceID: "in_123",
			BaseURL:    "://not-a-url",
		})
		require.NoError(t, err)

		payload, err := dispatch[dispatchPayload](ctx, client, http.MethodGet, "/ping", nil, nil)
		assert.Nil(t, payload)
		assert.ErrorContains(t, err, "building URL path:")
	})
}

func Test_parseErrorResponse(t *testing.T) {
	t.Run("message and code", func(t *testing.T) {
		err := parseErrorResponse(http.StatusBadRequest, []byte(`{"message": "Invalid quote", "code": "bad_request"}`))
		assert.EqualError(t, err, "BlindPay API error [bad_request] = Invalid quote")
	})

	t.Run("message only", func(t *testing.T) {
		err := parseErrorResponse(http.StatusBadRequest, []byte(`{"message": "Invalid quote"}`))
		assert.EqualError(t, err, "BlindPay API error = Invalid quote")
	})

	t.Run("undecodable body falls back to raw", func(t *testing.T) {
		err := parseErrorResponse(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
		assert.EqualError(t, err, "BlindPay API error (status 502): <html>bad gateway</html>")
	})

	t.Run("empty message falls back to raw", func(t *testing.T) {
		err := parseErrorResponse(http.StatusForbidden, []byte(`{"error": "nope"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Empty(t, apiErr.Message)
		assert.Equal(t, `{"error": "nope"}`, apiErr.RawBody)
	})
}

func Test_listQuery(t *testing.T) {
	t.Run("nil options", func(t *testing.T) {
		query, err := listQuery(nil)
		require.NoError(t, err)
		assert.Empty(t, query.Encode())
	})

	t.Run("zero options are omitted", func(t *testing.T) {
		query, err := listQuery(&ListOptions{})
		require.NoError(t, err)
		assert.Empty(t, query.Encode())
	})

	t.Run("set options are encoded", func(t *testing.T) {
		query, err := listQuery(&ListOptions{
			Limit:         25,
			Offset:        50,
			StartingAfter: "py_123",
		})
		require.NoError(t, err)
		assert.Equal(t, "limit=25&offset=50&starting_after=py_123", query.Encode())
	})
}
