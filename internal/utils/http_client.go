// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. The embedding exposes the full resty API;
// the server adapter configures the base URL and request timeout on top.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient with its own connection pool and
// configuration. The client carries no defaults of its own; every knob is
// set by the caller.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
