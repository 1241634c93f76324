package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgprometheus "github.com/Azure/armclients/pkg/metrics/prometheus"
)

func TestPrintRequestSummary(t *testing.T) {
	t.Run("no requests", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printRequestSummary(&buf, prometheus.NewRegistry()))
		assert.Empty(t, buf.String())
	})

	t.Run("requests", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		emitter := pkgprometheus.New(registry)

		get := map[string]string{"method": "GET", "code": "200", "provider": "microsoft.network"}
		emitter.EmitFloat("client.request.duration", 120, get)
		emitter.EmitFloat("client.request.duration", 80, get)
		emitter.EmitFloat("client.request.duration", 30, map[string]string{"method": "GET", "code": "403", "provider": "microsoft.avs"})
		emitter.EmitGauge("client.request.count", 1, get)

		var buf bytes.Buffer
		require.NoError(t, printRequestSummary(&buf, registry))

		out := buf.String()
		avs := strings.Index(out, "microsoft.avs")
		network := strings.Index(out, "microsoft.network")
		require.NotEqual(t, -1, avs)
		require.NotEqual(t, -1, network)
		assert.Less(t, avs, network)
		assert.Contains(t, out, "200")
		assert.Contains(t, out, "403")
	})
}
