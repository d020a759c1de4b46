// Copyright (c) 2026, CCS Gateway Operations.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HttpRequest describes one outbound request. Name identifies the call
// in logs and error messages.
type HttpRequest struct {
	Name   string
	URL    string
	Method string

	headers map[string]string
	body    []byte
	bodyErr error
}

// SetHeader sets a request header.
func (r *HttpRequest) SetHeader(key, value string) {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
}

// SetJson marshals the payload as the JSON request body.
func (r *HttpRequest) SetJson(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.bodyErr = fmt.Errorf("failed to marshal request body: %w", err)
		return
	}
	r.body = data
	r.SetHeader("Content-Type", "application/json")
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	if r.bodyErr != nil {
		return nil, r.bodyErr
	}
	var body *bytes.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	for key, value := range r.headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

// HttpError is returned when a response arrives with an unexpected
// status code.
type HttpError struct {
	StatusCode int
	Body       string
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
