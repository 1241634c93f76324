package cmp

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff is a wrapper for github.com/google/go-cmp/cmp.Diff with extra options:
// nil and empty slices and maps are equal, and timestamps are compared by
// instant rather than by location.
func Diff(x, y interface{}, opts ...gocmp.Option) string {
	newOpts := append(
		opts,
		cmpopts.EquateEmpty(),
		gocmp.Comparer(func(a, b date.Time) bool { return a.Time.Equal(b.Time) }),
		gocmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
	)

	return gocmp.Diff(x, y, newOpts...)
}
