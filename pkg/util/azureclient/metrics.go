package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/Azure/armclients/pkg/metrics"
)

const (
	metricRequestCount    = "client.request.count"
	metricRequestDuration = "client.request.duration"
)

// NewMetricsPolicy returns a per-call policy emitting a count and a duration
// (milliseconds) for every request, dimensioned by method, status code and
// provider namespace.
func NewMetricsPolicy(emitter metrics.Emitter) policy.Policy {
	return PolicyFunc(func(req *policy.Request) (*http.Response, error) {
		start := time.Now()

		res, err := req.Next()

		code := "0"
		if res != nil {
			code = strconv.Itoa(res.StatusCode)
		}

		dims := map[string]string{
			"method":   req.Raw().Method,
			"code":     code,
			"provider": providerNamespace(req.Raw().URL.Path),
		}

		emitter.EmitGauge(metricRequestCount, 1, dims)
		emitter.EmitFloat(metricRequestDuration, milliseconds(time.Since(start)), dims)

		return res, err
	})
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// providerNamespace returns the lower-cased namespace following the last
// "providers" segment of path, or "" if there is none.
func providerNamespace(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i := len(segments) - 2; i >= 0; i-- {
		if strings.EqualFold(segments[i], "providers") {
			return strings.ToLower(segments[i+1])
		}
	}
	return ""
}
