package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Page is one page of a list operation. A page without NextLink is the last
// one.
type Page[T any] struct {
	Value    []T     `json:"value"`
	NextLink *string `json:"nextLink,omitempty"`
}

// Pager is the iteration half of *runtime.Pager, as consumed by Collect.
type Pager[T any] interface {
	More() bool
	NextPage(ctx context.Context) (Page[T], error)
}

var _ Pager[struct{}] = (*runtime.Pager[Page[struct{}]])(nil)

// NewPager returns a single-pass pager over a list operation. The first page
// is fetched with the request described by b; every following page with the
// previous page's nextLink. Pages are fetched lazily by NextPage; a failing
// fetch returns its error and no further pages are fetched.
func NewPager[T any](c *Client, b *RequestBuilder) *runtime.Pager[Page[T]] {
	return runtime.NewPager(runtime.PagingHandler[Page[T]]{
		More: func(page Page[T]) bool {
			return page.NextLink != nil && len(*page.NextLink) > 0
		},
		Fetcher: func(ctx context.Context, page *Page[T]) (Page[T], error) {
			var req *policy.Request
			var err error
			if page == nil {
				req, err = c.NewRequest(ctx, b)
			} else {
				req, err = c.NewNextLinkRequest(ctx, *page.NextLink)
			}
			if err != nil {
				return Page[T]{}, err
			}

			resp, err := c.pipeline.Do(req)
			if err != nil {
				return Page[T]{}, err
			}

			if !runtime.HasStatusCode(resp, http.StatusOK) {
				return Page[T]{}, runtime.NewResponseError(resp)
			}

			var result Page[T]
			if err := UnmarshalAsJSON(resp, &result); err != nil {
				return Page[T]{}, err
			}

			return result, nil
		},
		Tracer: c.tracer,
	})
}

// Collect drains pager and returns every item in order.
func Collect[T any](ctx context.Context, pager Pager[T]) ([]T, error) {
	var result []T

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		result = append(result, page.Value...)
	}

	return result, nil
}
