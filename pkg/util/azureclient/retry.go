package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"net/http"
	"slices"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/go-autorest/autorest"
)

// RetryOptions is the retry policy used by clients created through
// ArmClientOptions. Retries are the pipeline's business; resource clients
// never retry on their own.
var RetryOptions = policy.RetryOptions{
	MaxRetries:    3,
	RetryDelay:    4 * time.Second,
	MaxRetryDelay: 60 * time.Second,
	ShouldRetry:   isRetriable,
}

// error codes returned while a new role assignment or service principal is
// still propagating
var retriableErrorCodes = [][]byte{
	[]byte("AADSTS7000215"),
	[]byte("AADSTS7000216"),
	[]byte("AuthorizationFailed"),
}

// isRetriable checks if the response is retriable.
func isRetriable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	// Don't retry if successful
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return false
	}
	if slices.Contains(autorest.StatusCodesForRetry, resp.StatusCode) {
		return true
	}

	// Payload leaves the body readable for the caller.
	body, err := runtime.Payload(resp)
	if err != nil {
		return true
	}
	for _, code := range retriableErrorCodes {
		if bytes.Contains(body, code) {
			return true
		}
	}
	return false
}
