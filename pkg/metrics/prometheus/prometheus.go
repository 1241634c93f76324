package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Azure/armclients/pkg/metrics"
)

const metricsNamespace = "armclients"

// emitter maps Emitter calls onto prometheus collectors. Gauges become
// GaugeVecs and floats become HistogramVecs; one collector is registered per
// metric name and dimension key set.
type emitter struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

var _ metrics.Emitter = &emitter{}

// New returns a metrics.Emitter registering its collectors with r.
func New(r prometheus.Registerer) metrics.Emitter {
	return &emitter{
		registerer: r,
		gauges:     map[string]*prometheus.GaugeVec{},
		histograms: map[string]*prometheus.HistogramVec{},
	}
}

func (e *emitter) EmitGauge(m string, value int64, dims map[string]string) {
	labels := labelNames(dims)
	key := collectorKey(m, labels)

	e.mu.Lock()
	g, ok := e.gauges[key]
	if !ok {
		g = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      metricName(m),
			Help:      m,
		}, labels)
		g = e.register(g).(*prometheus.GaugeVec)
		e.gauges[key] = g
	}
	e.mu.Unlock()

	g.With(prometheus.Labels(dims)).Set(float64(value))
}

func (e *emitter) EmitFloat(m string, value float64, dims map[string]string) {
	labels := labelNames(dims)
	key := collectorKey(m, labels)

	e.mu.Lock()
	h, ok := e.histograms[key]
	if !ok {
		h = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      metricName(m),
			Help:      m,
		}, labels)
		h = e.register(h).(*prometheus.HistogramVec)
		e.histograms[key] = h
	}
	e.mu.Unlock()

	h.With(prometheus.Labels(dims)).Observe(value)
}

// register returns the collector already registered under the same
// descriptor, if any, so that emitters can share a registry.
func (e *emitter) register(c prometheus.Collector) prometheus.Collector {
	if e.registerer == nil {
		return c
	}

	err := e.registerer.Register(c)
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector
	}
	if err != nil {
		panic(err)
	}

	return c
}

func labelNames(dims map[string]string) []string {
	labels := make([]string, 0, len(dims))
	for k := range dims {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

func collectorKey(m string, labels []string) string {
	return m + "|" + strings.Join(labels, ",")
}

// metricName turns "client.request.count" into "client_request_count".
func metricName(m string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_").Replace(m)
}
