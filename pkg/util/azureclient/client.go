package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/tracing"
	"github.com/Azure/go-autorest/autorest/validation"
)

const moduleVersion = "v1.0.0"

// Client is embedded by every resource client. It owns the ARM pipeline
// (credential, retry, logging and metrics policies, transport) for one
// subscription and one pinned api-version, and turns RequestBuilders into
// requests.
type Client struct {
	name           string
	endpoint       string
	subscriptionID string
	apiVersion     string
	pipeline       runtime.Pipeline
	tracer         tracing.Tracer
}

// NewClient creates a Client. name identifies the resource client in
// telemetry and validation errors, e.g. "privatedns.PrivateZonesClient".
// options may be nil, in which case the public cloud and the azcore default
// pipeline are used.
func NewClient(name, subscriptionID, apiVersion string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	cl, err := arm.NewClient(name, moduleVersion, credential, options)
	if err != nil {
		return nil, err
	}

	return &Client{
		name:           name,
		endpoint:       cl.Endpoint(),
		subscriptionID: subscriptionID,
		apiVersion:     apiVersion,
		pipeline:       cl.Pipeline(),
		tracer:         cl.Tracer(),
	}, nil
}

// Endpoint returns the ARM endpoint requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SubscriptionID returns the subscription the client was created for.
func (c *Client) SubscriptionID() string {
	return c.subscriptionID
}

// APIVersion returns the api-version set on every request.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// NewRequest validates the bound parameters of b and builds the
// corresponding request. b is not modified.
func (c *Client) NewRequest(ctx context.Context, b *RequestBuilder) (*policy.Request, error) {
	if len(b.validations) > 0 {
		if err := validation.Validate(b.validations); err != nil {
			return nil, validation.NewError(c.name, b.operation, "%s", err.Error())
		}
	}

	urlPath, err := b.expand()
	if err != nil {
		return nil, err
	}

	req, err := runtime.NewRequest(ctx, b.method, runtime.JoinPaths(c.endpoint, urlPath))
	if err != nil {
		return nil, err
	}

	apiVersion := c.apiVersion
	if b.apiVersion != "" {
		apiVersion = b.apiVersion
	}

	reqQP := req.Raw().URL.Query()
	for k, vs := range b.query {
		reqQP[k] = append([]string(nil), vs...)
	}
	reqQP.Set("api-version", apiVersion)
	req.Raw().URL.RawQuery = reqQP.Encode()

	req.Raw().Header["Accept"] = []string{"application/json"}
	for k, vs := range b.header {
		req.Raw().Header[k] = append([]string(nil), vs...)
	}

	if b.hasBody {
		if err := runtime.MarshalAsJSON(req, b.body); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// NewNextLinkRequest builds the GET for a continuation link returned in a
// list page. Relative links are resolved against the endpoint. The link is
// otherwise used verbatim: api-version is only added when the service did not
// already embed one.
func (c *Client) NewNextLinkRequest(ctx context.Context, nextLink string) (*policy.Request, error) {
	base, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}

	ref, err := url.Parse(nextLink)
	if err != nil {
		return nil, err
	}

	u := base.ResolveReference(ref)

	if !hasQueryKey(u.RawQuery, "api-version") {
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += "api-version=" + url.QueryEscape(c.apiVersion)
	}

	req, err := runtime.NewRequest(ctx, http.MethodGet, u.String())
	if err != nil {
		return nil, err
	}
	req.Raw().Header["Accept"] = []string{"application/json"}

	return req, nil
}

// hasQueryKey reports whether rawQuery carries key, without decoding or
// re-encoding the rest of the query.
func hasQueryKey(rawQuery, key string) bool {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, _, _ := strings.Cut(pair, "=")
		if k == key {
			return true
		}
	}
	return false
}

// Do sends the request described by b through the pipeline exactly once. A
// response whose status code is not one of b's success codes is returned as
// an *azcore.ResponseError.
func (c *Client) Do(ctx context.Context, b *RequestBuilder) (*http.Response, error) {
	req, err := c.NewRequest(ctx, b)
	if err != nil {
		return nil, err
	}

	resp, err := c.pipeline.Do(req)
	if err != nil {
		return nil, err
	}

	if !runtime.HasStatusCode(resp, b.statusCodes...) {
		return nil, runtime.NewResponseError(resp)
	}

	return resp, nil
}
