package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"slices"
)

// IsKnown reports whether v is one of the known values of an enumeration.
//
// Enumerations are string-kinded so that values introduced by a newer
// api-version decode without error; IsKnown tells them apart from the values
// this module was built against.
func IsKnown[T ~string](v T, known []T) bool {
	return slices.Contains(known, v)
}
