package mocks

import (
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/blindpay/blindpay-go/httpclient"
)

type testInterface interface {
	mock.TestingT
	Cleanup(func())
}

type HttpClientMock struct {
	mock.Mock
}

func (h *HttpClientMock) Do(req *http.Request) (*http.Response, error) {
	args := h.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewHttpClientMock creates a new instance of HttpClientMock. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHttpClientMock(t testInterface) *HttpClientMock {
	mock := &HttpClientMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

var _ httpclient.HTTPClientInterface = (*HttpClientMock)(nil)
