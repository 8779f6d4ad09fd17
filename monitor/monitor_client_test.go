package monitor

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blindpay/blindpay-go/httpclient"
	"github.com/blindpay/blindpay-go/httpclient/mocks"
)

func Test_NewMonitorClient(t *testing.T) {
	t.Run("registers the request metrics", func(t *testing.T) {
		registry := prometheus.NewRegistry()

		monitorClient, err := NewMonitorClient(httpclient.DefaultClient(), registry)
		require.NoError(t, err)
		assert.NotNil(t, monitorClient)
	})

	t.Run("returns an error when the metrics are already registered", func(t *testing.T) {
		registry := prometheus.NewRegistry()

		_, err := NewMonitorClient(httpclient.DefaultClient(), registry)
		require.NoError(t, err)

		_, err = NewMonitorClient(httpclient.DefaultClient(), registry)
		assert.ErrorContains(t, err, "registering prometheus collector")
	})
}

func Test_MonitorClient_Do(t *testing.T) {
	scrapeMetrics := func(t *testing.T, registry *prometheus.Registry) string {
		t.Helper()

		req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(rr, req)

		resp := rr.Result()
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		return string(data)
	}

	t.Run("records the method, status and host of the request", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		httpClientMock := mocks.NewHttpClientMock(t)
		monitorClient, err := NewMonitorClient(httpClientMock, registry)
		require.NoError(t, err)

		httpClientMock.
			On("Do", mock.Anything).
			Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"data": []}`)),
			}, nil).
			Once()

		req, err := http.NewRequest(http.MethodGet, "https://api.blindpay.example.com/v1/instances/in_123/receivers", nil)
		require.NoError(t, err)

		resp, err := monitorClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := scrapeMetrics(t, registry)
		assert.Contains(t, body, `blindpay_api_requests_total{host="api.blindpay.example.com",method="GET",status="200"} 1`)
		assert.Contains(t, body, `blindpay_api_request_duration_seconds_count{host="api.blindpay.example.com",method="GET",status="200"} 1`)
	})

	t.Run("records transport failures under the error status", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		httpClientMock := mocks.NewHttpClientMock(t)
		monitorClient, err := NewMonitorClient(httpClientMock, registry)
		require.NoError(t, err)

		testError := errors.New("test error")
		httpClientMock.
			On("Do", mock.Anything).
			Return(nil, testError).
			Once()

		req, err := http.NewRequest(http.MethodPost, "https://api.blindpay.example.com/v1/instances/in_123/quotes", nil)
		require.NoError(t, err)

		resp, err := monitorClient.Do(req)
		assert.EqualError(t, err, "test error")
		assert.Nil(t, resp)

		body := scrapeMetrics(t, registry)
		assert.Contains(t, body, `blindpay_api_requests_total{host="api.blindpay.example.com",method="POST",status="error"} 1`)
		assert.Contains(t, body, `blindpay_api_request_duration_seconds_count{host="api.blindpay.example.com",method="POST",status="error"} 1`)
	})
}
