package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/armclients/test/util/armtest"
	testhttp "github.com/Azure/armclients/test/util/http"
)

type thing struct {
	Name string `json:"name"`
}

func TestPager(t *testing.T) {
	ctx := context.Background()

	t.Run("follows nextLink across pages", func(t *testing.T) {
		c, f := newTestClient(t)
		f.Transport.
			AddResponse(testhttp.WithBody(`{"value":[{"name":"a"},{"name":"b"}],"nextLink":"` + armtest.Endpoint + `/things?api-version=2020-01-01&%24skipToken=1"}`)).
			AddResponse(testhttp.WithBody(`{"value":[{"name":"c"},{"name":"d"}],"nextLink":"/things?%24skipToken=2"}`)).
			AddResponse(testhttp.WithBody(`{"value":[{"name":"e"}]}`))

		b := NewRequestBuilder("List", http.MethodGet, "/things", http.StatusOK).
			Query("$top", "2")

		got, err := Collect[thing](ctx, NewPager[thing](c, b))
		require.NoError(t, err)

		assert.Equal(t, []thing{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}, got)

		reqs := f.Transport.Requests()
		require.Len(t, reqs, 3)
		assert.Equal(t, armtest.Endpoint+"/things?%24top=2&api-version=2020-01-01", reqs[0].URL.String())
		// continuation links are not re-decorated with the first request's query
		assert.Equal(t, armtest.Endpoint+"/things?api-version=2020-01-01&%24skipToken=1", reqs[1].URL.String())
		assert.Equal(t, armtest.Endpoint+"/things?%24skipToken=2&api-version=2020-01-01", reqs[2].URL.String())
	})

	t.Run("empty nextLink ends iteration", func(t *testing.T) {
		c, f := newTestClient(t)
		f.Transport.AddResponse(testhttp.WithBody(`{"value":[{"name":"a"}],"nextLink":""}`))

		got, err := Collect[thing](ctx, NewPager[thing](c, NewRequestBuilder("List", http.MethodGet, "/things", http.StatusOK)))
		require.NoError(t, err)

		assert.Equal(t, []thing{{"a"}}, got)
		assert.Zero(t, f.Transport.Pending())
	})

	t.Run("empty first page", func(t *testing.T) {
		c, f := newTestClient(t)
		f.Transport.AddResponse(testhttp.WithBody(`{"value":[]}`))

		got, err := Collect[thing](ctx, NewPager[thing](c, NewRequestBuilder("List", http.MethodGet, "/things", http.StatusOK)))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("pages are fetched lazily", func(t *testing.T) {
		c, f := newTestClient(t)
		f.Transport.
			AddResponse(testhttp.WithBody(`{"value":[{"name":"a"}],"nextLink":"/things?page=2"}`)).
			AddResponse(testhttp.WithBody(`{"value":[{"name":"b"}]}`))

		pager := NewPager[thing](c, NewRequestBuilder("List", http.MethodGet, "/things", http.StatusOK))
		assert.Empty(t, f.Transport.Requests())

		require.True(t, pager.More())
		page, err := pager.NextPage(ctx)
		require.NoError(t, err)
		assert.Equal(t, []thing{{"a"}}, page.Value)
		assert.Len(t, f.Transport.Requests(), 1)

		require.True(t, pager.More())
		_, err = pager.NextPage(ctx)
		require.NoError(t, err)
		assert.False(t, pager.More())
	})

	t.Run("error on a later page", func(t *testing.T) {
		c, f := newTestClient(t)
		f.Transport.
			AddResponse(testhttp.WithBody(`{"value":[{"name":"a"}],"nextLink":"/things?page=2"}`)).
			AddResponse(testhttp.WithCloudError(http.StatusInternalServerError, "InternalServerError", "boom"))

		pager := NewPager[thing](c, NewRequestBuilder("List", http.MethodGet, "/things", http.StatusOK))

		page, err := pager.NextPage(ctx)
		require.NoError(t, err)
		assert.Equal(t, []thing{{"a"}}, page.Value)

		_, err = pager.NextPage(ctx)
		assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
		assert.Equal(t, "InternalServerError", ErrorCode(err))
	})

	t.Run("Collect returns nothing on error", func(t *testing.T) {
		c, f := newTestClient(t)
		f.Transport.
			AddResponse(testhttp.WithBody(`{"value":[{"name":"a"}],"nextLink":"/things?page=2"}`)).
			AddResponse(testhttp.WithCloudError(http.StatusNotFound, "NotFound", "gone"))

		got, err := Collect[thing](ctx, NewPager[thing](c, NewRequestBuilder("List", http.MethodGet, "/things", http.StatusOK)))
		assert.True(t, IsNotFoundError(err))
		assert.Nil(t, got)
	})
}
