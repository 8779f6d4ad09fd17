package blindpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/stellar/go/support/log"
)

var queryEncoder = schema.NewEncoder()

// dispatch executes one HTTP exchange against the API and decodes the
// response body into T. Every resource operation funnels through here.
func dispatch[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*T, error) {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("building URL path: %w", err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, mErr := json.Marshal(body)
		if mErr != nil {
			return nil, &SerializationError{Op: "encoding", Err: mErr}
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Ctx(ctx).Debugf("BlindPay API request: %s %s", method, u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode/100 != 2 {
		log.Ctx(ctx).Debugf("BlindPay API returned status %d for %s %s", resp.StatusCode, method, u)
		return nil, parseErrorResponse(resp.StatusCode, respBody)
	}

	var payload T
	if len(bytes.TrimSpace(respBody)) == 0 {
		return &payload, nil
	}
	if jsonErr := json.Unmarshal(respBody, &payload); jsonErr != nil {
		return nil, &SerializationError{Op: "decoding", Err: jsonErr}
	}
	return &payload, nil
}

// parseErrorResponse maps a non-2xx response to an *APIError. Bodies
// that do not carry the API's error shape surface as raw status + body.
func parseErrorResponse(statusCode int, body []byte) error {
	var remote struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(body, &remote); err != nil || remote.Message == "" {
		return &APIError{StatusCode: statusCode, RawBody: string(body)}
	}
	return &APIError{
		StatusCode: statusCode,
		Code:       remote.Code,
		Message:    remote.Message,
		RawBody:    string(body),
	}
}

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	return dispatch[T](ctx, c, http.MethodGet, path, nil, nil)
}

func getWithQuery[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	return dispatch[T](ctx, c, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	return dispatch[T](ctx, c, http.MethodPost, path, nil, body)
}

func put[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	return dispatch[T](ctx, c, http.MethodPut, path, nil, body)
}

func del(ctx context.Context, c *Client, path string) error {
	_, err := dispatch[struct{}](ctx, c, http.MethodDelete, path, nil, nil)
	return err
}

// listQuery encodes pagination options into query parameters.
func listQuery(opts *ListOptions) (url.Values, error) {
	vals := url.Values{}
	if opts == nil {
		return vals, nil
	}
	if err := queryEncoder.Encode(opts, vals); err != nil {
		return nil, fmt.Errorf("encoding list options: %w", err)
	}
	return vals, nil
}
