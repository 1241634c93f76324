package postgresql

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/armclients/pkg/util/azureclient"
)

// FirewallRulesClient manages the firewall rules of a flexible server.
type FirewallRulesClient struct {
	*azureclient.Client
}

// NewFirewallRulesClient creates a new FirewallRulesClient
func NewFirewallRulesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*FirewallRulesClient, error) {
	client, err := newClient("postgresql.FirewallRulesClient", subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &FirewallRulesClient{Client: client}, nil
}

func (c *FirewallRulesClient) firewallRule(operation, method, resourceGroupName, serverName, firewallRuleName string, statusCodes ...int) *azureclient.RequestBuilder {
	return server(c.Client, operation, method, "/firewallRules/{firewallRuleName}", resourceGroupName, serverName, statusCodes...).
		PathParam("firewallRuleName", firewallRuleName)
}

func (c *FirewallRulesClient) Get(ctx context.Context, resourceGroupName, serverName, firewallRuleName string) (FirewallRule, error) {
	return azureclient.Invoke[FirewallRule](ctx, c.Client, c.firewallRule("Get", http.MethodGet, resourceGroupName, serverName, firewallRuleName, http.StatusOK))
}

func (c *FirewallRulesClient) CreateOrUpdate(ctx context.Context, resourceGroupName, serverName, firewallRuleName string, parameters FirewallRule) (azureclient.Result[FirewallRule], error) {
	b := c.firewallRule("CreateOrUpdate", http.MethodPut, resourceGroupName, serverName, firewallRuleName, http.StatusOK, http.StatusCreated, http.StatusAccepted).
		Body(parameters)

	return azureclient.InvokeResult[FirewallRule](ctx, c.Client, b)
}

func (c *FirewallRulesClient) Delete(ctx context.Context, resourceGroupName, serverName, firewallRuleName string) (azureclient.Response, error) {
	return c.InvokeNoContent(ctx, c.firewallRule("Delete", http.MethodDelete, resourceGroupName, serverName, firewallRuleName, http.StatusOK, http.StatusAccepted, http.StatusNoContent))
}

// NewListByServerPager lists all the firewall rules in a given server.
func (c *FirewallRulesClient) NewListByServerPager(resourceGroupName, serverName string) *runtime.Pager[azureclient.Page[FirewallRule]] {
	return azureclient.NewPager[FirewallRule](c.Client, server(c.Client, "NewListByServerPager", http.MethodGet, "/firewallRules", resourceGroupName, serverName, http.StatusOK))
}
