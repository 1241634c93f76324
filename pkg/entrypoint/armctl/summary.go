package armctl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
)

const requestDurationMetric = "armclients_client_request_duration"

// printRequestSummary prints the number and total duration of the requests
// recorded in registry, per method, status code and provider.
func printRequestSummary(w io.Writer, registry prometheus.Gatherer) error {
	mfs, err := registry.Gather()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, mf := range mfs {
		if mf.GetName() != requestDurationMetric {
			continue
		}

		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}

			h := m.GetHistogram()
			rows = append(rows, []string{
				labels["provider"],
				labels["method"],
				labels["code"],
				strconv.FormatUint(h.GetSampleCount(), 10),
				fmt.Sprintf("%.0f", h.GetSampleSum()),
			})
		}
	}

	if len(rows) == 0 {
		return nil
	}

	sort.Slice(rows, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if rows[i][k] != rows[j][k] {
				return rows[i][k] < rows[j][k]
			}
		}
		return false
	})

	table := tablewriter.NewWriter(w)
	table.Header("Provider", "Method", "Code", "Requests", "Total ms")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
