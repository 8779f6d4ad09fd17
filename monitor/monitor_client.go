// Package monitor provides opt-in Prometheus instrumentation for the
// BlindPay client. Wrap the transport with NewMonitorClient and inject
// the result through blindpay.ClientOptions.HTTPClient:
//
//	monitored, err := monitor.NewMonitorClient(httpclient.DefaultClient(), prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//	client, err := blindpay.NewWithOptions(blindpay.ClientOptions{
//		APIKey:     apiKey,
//		InstanceID: instanceID,
//		HTTPClient: monitored,
//	})
package monitor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/blindpay/blindpay-go/httpclient"
)

// MonitorClient is an httpclient.HTTPClientInterface that records a
// duration histogram and a request counter for every round trip it
// executes.
type MonitorClient struct {
	httpClient httpclient.HTTPClientInterface
	metrics    *prometheusMetrics
}

// NewMonitorClient wraps httpClient and registers the request metrics on
// registerer. Registering a second MonitorClient on the same registerer
// fails with a duplicate collector error.
func NewMonitorClient(httpClient httpclient.HTTPClientInterface, registerer prometheus.Registerer) (*MonitorClient, error) {
	metrics, err := newPrometheusMetrics(registerer)
	if err != nil {
		return nil, err
	}

	return &MonitorClient{httpClient: httpClient, metrics: metrics}, nil
}

// Do executes the request with the wrapped client and records its
// duration and outcome. Transport failures are recorded under the
// status label "error".
func (c *MonitorClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	labels := RequestLabels{
		Method: req.Method,
		Status: "error",
		Host:   req.URL.Host,
	}
	if err == nil {
		labels.Status = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.observeRequest(duration, labels)

	return resp, err
}

var _ httpclient.HTTPClientInterface = (*MonitorClient)(nil)
