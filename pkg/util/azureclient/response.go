package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/pkg/errors"
)

// PollFrequency is how often the AndWait helpers poll a long running
// operation when the service does not send Retry-After.
var PollFrequency = 10 * time.Second

// Response describes a successful response by status code alone. It is
// returned by operations whose success carries no body (DELETE, POST
// actions) and embedded in Result.
type Response struct {
	StatusCode int

	// AsyncOperation is the URL to poll for the outcome of an accepted
	// request, taken from the Azure-AsyncOperation or Location header.
	AsyncOperation string
}

func newResponse(resp *http.Response) Response {
	r := Response{StatusCode: resp.StatusCode}

	r.AsyncOperation = resp.Header.Get("Azure-AsyncOperation")
	if r.AsyncOperation == "" {
		r.AsyncOperation = resp.Header.Get("Location")
	}

	return r
}

// Accepted reports a 202: the service took the request and will complete it
// asynchronously.
func (r Response) Accepted() bool {
	return r.StatusCode == http.StatusAccepted
}

// Created reports a 201.
func (r Response) Created() bool {
	return r.StatusCode == http.StatusCreated
}

// NoContent reports a 204, e.g. deleting a resource that did not exist.
func (r Response) NoContent() bool {
	return r.StatusCode == http.StatusNoContent
}

// Result is the outcome of an operation with more than one success status,
// such as a PUT answered with 200, 201 or 202. Value is nil when the
// response had no body, which is how a 202 is usually answered.
type Result[T any] struct {
	Response
	Value *T
}

// UnmarshalAsJSON decodes the body of resp into v. An empty body leaves v
// untouched. Decoding failures are wrapped; errors.Cause returns the
// encoding/json error.
func UnmarshalAsJSON(resp *http.Response, v any) error {
	_, err := unmarshalAsJSON(resp, v)
	return err
}

func unmarshalAsJSON(resp *http.Response, v any) (bool, error) {
	payload, err := runtime.Payload(resp)
	if err != nil {
		return false, err
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return false, errors.Wrapf(err, "unmarshalling type %T", v)
	}

	return true, nil
}

// Invoke sends b and decodes the response body into a T.
func Invoke[T any](ctx context.Context, c *Client, b *RequestBuilder) (T, error) {
	var v T

	resp, err := c.Do(ctx, b)
	if err != nil {
		return v, err
	}

	err = UnmarshalAsJSON(resp, &v)
	return v, err
}

// InvokeResult sends b and classifies the response by status code, decoding
// the body when there is one.
func InvokeResult[T any](ctx context.Context, c *Client, b *RequestBuilder) (Result[T], error) {
	resp, err := c.Do(ctx, b)
	if err != nil {
		return Result[T]{}, err
	}

	result := Result[T]{Response: newResponse(resp)}

	var v T
	ok, err := unmarshalAsJSON(resp, &v)
	if err != nil {
		return result, err
	}
	if ok {
		result.Value = &v
	}

	return result, nil
}

// InvokeNoContent sends b and discards the response body.
func (c *Client) InvokeNoContent(ctx context.Context, b *RequestBuilder) (Response, error) {
	resp, err := c.Do(ctx, b)
	if err != nil {
		return Response{}, err
	}

	if resp.Body != nil {
		resp.Body.Close()
	}

	return newResponse(resp), nil
}

// NewPoller sends b and returns a poller following the service's
// Azure-AsyncOperation/Location headers to the final resource state.
func NewPoller[T any](ctx context.Context, c *Client, b *RequestBuilder) (*runtime.Poller[T], error) {
	resp, err := c.Do(ctx, b)
	if err != nil {
		return nil, err
	}

	return runtime.NewPoller(resp, c.pipeline, &runtime.NewPollerOptions[T]{
		Tracer: c.tracer,
	})
}

// InvokeAndWait sends b and polls until the operation settles, returning the
// final resource.
func InvokeAndWait[T any](ctx context.Context, c *Client, b *RequestBuilder) (T, error) {
	poller, err := NewPoller[T](ctx, c, b)
	if err != nil {
		var v T
		return v, err
	}

	return poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: PollFrequency})
}
