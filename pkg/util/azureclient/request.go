package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/Azure/go-autorest/autorest/validation"
)

var unboundPathParameter = regexp.MustCompile(`\{[^/{}]+\}`)

type pathParam struct {
	name  string
	value string
	raw   bool
}

// RequestBuilder captures the parameters of one ARM call: method, path
// template, path parameters, query, headers, body and the set of status
// codes that count as success. It is turned into a request by
// Client.NewRequest and is not modified by doing so, so a builder can be
// sent any number of times and always yields the same request.
type RequestBuilder struct {
	operation   string
	method      string
	template    string
	params      []pathParam
	validations []validation.Validation
	query       url.Values
	header      http.Header
	apiVersion  string
	body        any
	hasBody     bool
	statusCodes []int
}

// NewRequestBuilder returns a builder for operation (used in validation
// errors), sending method to the path template. Placeholders in the
// template take the form {name} and must all be bound with PathParam or
// RawPathParam.
func NewRequestBuilder(operation, method, template string, statusCodes ...int) *RequestBuilder {
	return &RequestBuilder{
		operation:   operation,
		method:      method,
		template:    template,
		query:       url.Values{},
		header:      http.Header{},
		statusCodes: statusCodes,
	}
}

// PathParam binds a required path parameter. The value is path-escaped and
// must not be empty.
func (b *RequestBuilder) PathParam(name, value string) *RequestBuilder {
	b.params = append(b.params, pathParam{name: name, value: value})
	return b
}

// RawPathParam binds a path parameter that spans several segments, such as
// the resource URI scope of an extension resource. It is not escaped.
func (b *RequestBuilder) RawPathParam(name, value string) *RequestBuilder {
	b.params = append(b.params, pathParam{name: name, value: strings.TrimPrefix(value, "/"), raw: true})
	return b
}

// ResourceGroup binds {resourceGroupName} and validates it against the ARM
// naming rules.
func (b *RequestBuilder) ResourceGroup(resourceGroupName string) *RequestBuilder {
	b.validations = append(b.validations, validation.Validation{
		TargetValue: resourceGroupName,
		Constraints: []validation.Constraint{
			{Target: "resourceGroupName", Name: validation.MaxLength, Rule: 90, Chain: nil},
			{Target: "resourceGroupName", Name: validation.MinLength, Rule: 1, Chain: nil},
			{Target: "resourceGroupName", Name: validation.Pattern, Rule: `^[-\w\._\(\)]+$`, Chain: nil},
		},
	})
	return b.PathParam("resourceGroupName", resourceGroupName)
}

// Validate adds constraints checked before the request is built.
func (b *RequestBuilder) Validate(target string, value any, constraints ...validation.Constraint) *RequestBuilder {
	for i := range constraints {
		constraints[i].Target = target
	}
	b.validations = append(b.validations, validation.Validation{TargetValue: value, Constraints: constraints})
	return b
}

// Query sets a query parameter.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	b.query.Set(key, value)
	return b
}

// Header sets an optional header. A nil value leaves the header out of the
// request altogether.
func (b *RequestBuilder) Header(key string, value *string) *RequestBuilder {
	if value != nil {
		b.header.Set(key, *value)
	}
	return b
}

// APIVersion overrides the client's api-version for this request.
func (b *RequestBuilder) APIVersion(apiVersion string) *RequestBuilder {
	b.apiVersion = apiVersion
	return b
}

// Body sets the value sent as the JSON request body.
func (b *RequestBuilder) Body(v any) *RequestBuilder {
	b.body = v
	b.hasBody = true
	return b
}

// Clone returns a deep copy of b, except for the body value which is shared.
func (b *RequestBuilder) Clone() *RequestBuilder {
	clone := *b
	clone.params = append([]pathParam(nil), b.params...)
	clone.validations = append([]validation.Validation(nil), b.validations...)
	clone.query = url.Values{}
	for k, vs := range b.query {
		clone.query[k] = append([]string(nil), vs...)
	}
	clone.header = b.header.Clone()
	clone.statusCodes = append([]int(nil), b.statusCodes...)
	return &clone
}

// Method returns the HTTP method of the request.
func (b *RequestBuilder) Method() string {
	return b.method
}

// StatusCodes returns the status codes treated as success.
func (b *RequestBuilder) StatusCodes() []int {
	return append([]int(nil), b.statusCodes...)
}

// expand substitutes the bound path parameters into the template.
func (b *RequestBuilder) expand() (string, error) {
	urlPath := b.template
	for _, p := range b.params {
		if p.value == "" {
			return "", fmt.Errorf("parameter %s cannot be empty", p.name)
		}

		value := p.value
		if !p.raw {
			value = url.PathEscape(value)
		}
		urlPath = strings.ReplaceAll(urlPath, "{"+p.name+"}", value)
	}

	if m := unboundPathParameter.FindString(urlPath); m != "" {
		return "", fmt.Errorf("path parameter %s is not bound", strings.Trim(m, "{}"))
	}

	return urlPath, nil
}
