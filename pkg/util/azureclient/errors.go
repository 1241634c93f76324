package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// IsNotFoundError checks if the error is an error from ARM and 404 NotFound error.
func IsNotFoundError(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status of an ARM error, or 0 if err did not
// come from an ARM response.
func StatusCode(err error) int {
	var azErr *azcore.ResponseError
	if errors.As(err, &azErr) {
		return azErr.StatusCode
	}
	return 0
}

// ErrorCode returns the service error code of an ARM error, if the service
// sent one.
func ErrorCode(err error) string {
	var azErr *azcore.ResponseError
	if errors.As(err, &azErr) {
		return azErr.ErrorCode
	}
	return ""
}
