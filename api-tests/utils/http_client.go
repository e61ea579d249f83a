// Package utils cung cấp HTTP client dùng chung cho các test case tích hợp.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient bọc http.Client với base URL và bearer token dùng lại giữa các request.
type HTTPClient struct {
	BaseURL string
	Token   string
	client  *http.Client
}

// NewHTTPClient tạo client mới với timeout tính bằng giây.
func NewHTTPClient(baseURL string, timeoutSec int) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
			// Không tự follow redirect: các endpoint submit trả redirect
			// và test cần đọc Location header.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SetToken set bearer token cho các request tiếp theo.
func (c *HTTPClient) SetToken(token string) {
	c.Token = token
}

func (c *HTTPClient) do(method, path string, body io.Reader, contentType string) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("không tạo được request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("không đọc được response body: %v", err)
	}
	return resp, respBody, nil
}

// GET gửi request GET tới path (relative so với base URL).
func (c *HTTPClient) GET(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodGet, path, nil, "")
}

// POST gửi request POST với payload JSON.
func (c *HTTPClient) POST(path string, payload interface{}) (*http.Response, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("không marshal được payload: %v", err)
	}
	return c.do(http.MethodPost, path, bytes.NewReader(data), "application/json")
}

// POSTForm gửi request POST với body form-urlencoded (cho các endpoint submit form).
func (c *HTTPClient) POSTForm(path string, form url.Values) (*http.Response, []byte, error) {
	return c.do(http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

// PUT gửi request PUT với payload JSON.
func (c *HTTPClient) PUT(path string, payload interface{}) (*http.Response, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("không marshal được payload: %v", err)
	}
	return c.do(http.MethodPut, path, bytes.NewReader(data), "application/json")
}

// DELETE gửi request DELETE tới path.
func (c *HTTPClient) DELETE(path string) (*http.Response, []byte, error) {
	return c.do(http.MethodDelete, path, nil, "")
}
