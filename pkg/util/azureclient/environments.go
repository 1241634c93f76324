package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/sirupsen/logrus"

	"github.com/Azure/armclients/pkg/metrics"
)

// ARMEnvironment contains the cloud-specific information needed to talk to
// Azure Resource Manager.
type ARMEnvironment struct {
	azure.Environment
	ActualCloudName string
	Cloud           cloud.Configuration
	// Microsoft identity platform scope for ARM
	// See https://learn.microsoft.com/EN-US/azure/active-directory/develop/scopes-oidc#the-default-scope
	ResourceManagerScope string
}

var (
	// PublicCloud contains information for the public Azure cloud environment.
	PublicCloud = ARMEnvironment{
		Environment:          azure.PublicCloud,
		ActualCloudName:      "AzureCloud",
		Cloud:                cloud.AzurePublic,
		ResourceManagerScope: azure.PublicCloud.ResourceManagerEndpoint + "/.default",
	}

	// USGovernmentCloud contains information for the US Gov cloud environment.
	USGovernmentCloud = ARMEnvironment{
		Environment:          azure.USGovernmentCloud,
		ActualCloudName:      "AzureUSGovernment",
		Cloud:                cloud.AzureGovernment,
		ResourceManagerScope: azure.USGovernmentCloud.ResourceManagerEndpoint + "/.default",
	}

	// ChinaCloud contains information for the Azure China cloud environment.
	ChinaCloud = ARMEnvironment{
		Environment:          azure.ChinaCloud,
		ActualCloudName:      "AzureChinaCloud",
		Cloud:                cloud.AzureChina,
		ResourceManagerScope: azure.ChinaCloud.ResourceManagerEndpoint + "/.default",
	}
)

// EnvironmentFromName returns the ARMEnvironment corresponding to the common name specified.
func EnvironmentFromName(name string) (ARMEnvironment, error) {
	switch strings.ToUpper(name) {
	case "AZUREPUBLICCLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD":
		return USGovernmentCloud, nil
	case "AZURECHINACLOUD":
		return ChinaCloud, nil
	}
	return ARMEnvironment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when
// instantiating the resource clients of this module. Outbound requests are
// logged to log and measured through emitter; either may be nil.
func (e *ARMEnvironment) ArmClientOptions(log *logrus.Entry, emitter metrics.Emitter, policies ...policy.Policy) *arm.ClientOptions {
	perCall := []policy.Policy{}
	if log != nil {
		perCall = append(perCall, NewLoggingPolicy(log))
	}
	if emitter != nil {
		perCall = append(perCall, NewMetricsPolicy(emitter))
	}

	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud:           e.Cloud,
			Retry:           RetryOptions,
			PerCallPolicies: append(perCall, policies...),
		},
	}
}

func (e *ARMEnvironment) ClientSecretCredentialOptions() *azidentity.ClientSecretCredentialOptions {
	return &azidentity.ClientSecretCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

func (e *ARMEnvironment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

func (e *ARMEnvironment) EnvironmentCredentialOptions() *azidentity.EnvironmentCredentialOptions {
	return &azidentity.EnvironmentCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}
