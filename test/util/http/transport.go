package http

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

type response struct {
	statusCode int
	header     http.Header
	body       []byte
	err        error
}

// Option configures one canned response.
type Option func(*response)

// WithStatusCode sets the status code of the response (default 200).
func WithStatusCode(statusCode int) Option {
	return func(r *response) {
		r.statusCode = statusCode
	}
}

// WithBody sets the response body.
func WithBody(body string) Option {
	return func(r *response) {
		r.body = []byte(body)
	}
}

// WithHeader adds a response header.
func WithHeader(key, value string) Option {
	return func(r *response) {
		r.header.Add(key, value)
	}
}

// WithError makes the transport fail instead of responding.
func WithError(err error) Option {
	return func(r *response) {
		r.err = err
	}
}

// Transport is a policy.Transporter replaying canned responses in the order
// they were added and recording every request it is given.
type Transport struct {
	mu        sync.Mutex
	responses []*response
	requests  []*http.Request
	bodies    [][]byte
}

var _ policy.Transporter = &Transport{}

// NewTransport returns a Transport with no queued responses.
func NewTransport() *Transport {
	return &Transport{}
}

// AddResponse queues a response.
func (t *Transport) AddResponse(opts ...Option) *Transport {
	r := &response{statusCode: http.StatusOK, header: http.Header{}}
	for _, o := range opts {
		o(r)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses = append(t.responses, r)

	return t
}

// Do implements policy.Transporter.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, req)
	t.bodies = append(t.bodies, body)

	if len(t.responses) == 0 {
		return nil, fmt.Errorf("no response queued for %s %s", req.Method, req.URL)
	}

	r := t.responses[0]
	t.responses = t.responses[1:]

	if r.err != nil {
		return nil, r.err
	}

	return &http.Response{
		StatusCode:    r.statusCode,
		Status:        fmt.Sprintf("%d %s", r.statusCode, http.StatusText(r.statusCode)),
		Header:        r.header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(r.body)),
		ContentLength: int64(len(r.body)),
		Request:       req,
	}, nil
}

// Requests returns the requests sent so far.
func (t *Transport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*http.Request(nil), t.requests...)
}

// RequestBodies returns the bodies of the requests sent so far, in order.
func (t *Transport) RequestBodies() [][]byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([][]byte(nil), t.bodies...)
}

// Pending returns the number of responses not yet consumed.
func (t *Transport) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.responses)
}

// WithCloudError makes the response carry an ARM error body.
func WithCloudError(statusCode int, code, message string) Option {
	return func(r *response) {
		r.statusCode = statusCode
		r.header.Set("Content-Type", "application/json")
		r.body = []byte(fmt.Sprintf(`{"error":{"code":%q,"message":%q}}`, code, message))
	}
}
