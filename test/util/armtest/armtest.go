package armtest

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	testhttp "github.com/Azure/armclients/test/util/http"
	"github.com/Azure/armclients/test/util/token"
)

const (
	// Endpoint is the ARM endpoint test clients talk to.
	Endpoint = "https://management.example.com"

	SubscriptionID = "00000000-0000-0000-0000-000000000000"
)

// Cloud is a cloud configuration pointing ARM at Endpoint.
var Cloud = cloud.Configuration{
	ActiveDirectoryAuthorityHost: "https://login.example.com/",
	Services: map[cloud.ServiceName]cloud.ServiceConfiguration{
		cloud.ResourceManager: {
			Audience: Endpoint,
			Endpoint: Endpoint,
		},
	},
}

// ClientOptions returns options sending every request to transport, with
// retries and resource provider registration disabled.
func ClientOptions(transport policy.Transporter, policies ...policy.Policy) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud:           Cloud,
			Transport:       transport,
			Retry:           policy.RetryOptions{MaxRetries: -1},
			PerCallPolicies: policies,
		},
		DisableRPRegistration: true,
	}
}

// New returns a fresh fake transport and credential along with options
// wired to them.
func New(t *testing.T, policies ...policy.Policy) (*testhttp.Transport, *token.Credential, *arm.ClientOptions) {
	t.Helper()

	transport := testhttp.NewTransport()

	cred, err := token.NewCredential()
	if err != nil {
		t.Fatal(err)
	}

	return transport, cred, ClientOptions(transport, policies...)
}

// Fixture groups the fakes a test client was created with.
type Fixture struct {
	Transport  *testhttp.Transport
	Credential *token.Credential
}

