package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg. An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	switch {
	case err == nil && wantMsg != "":
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	case err != nil && err.Error() != wantMsg:
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertResponseError asserts that err is an ARM response error carrying
// wantStatusCode and wantErrorCode.
func AssertResponseError(t *testing.T, err error, wantStatusCode int, wantErrorCode string) {
	t.Helper()

	var azErr *azcore.ResponseError
	if !errors.As(err, &azErr) {
		t.Errorf("got error '%v', but wanted an ARM response error", err)
		return
	}

	if azErr.StatusCode != wantStatusCode {
		t.Errorf("got status code %d, but wanted %d", azErr.StatusCode, wantStatusCode)
	}
	if azErr.ErrorCode != wantErrorCode {
		t.Errorf("got error code '%s', but wanted '%s'", azErr.ErrorCode, wantErrorCode)
	}
}
