package workloads

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/gork-labs/azwire/pkg/armclient"
)

// APIVersion is the api-version sent by the clients in this package.
const APIVersion = "2022-11-01-preview"

// SAPVirtualInstancesClient lists Virtual Instances for SAP solutions.
type SAPVirtualInstancesClient struct {
	subscriptionID string
	client         *armclient.Client
}

// NewSAPVirtualInstancesClient creates a SAPVirtualInstancesClient for the given subscription.
func NewSAPVirtualInstancesClient(subscriptionID string, client *armclient.Client) *SAPVirtualInstancesClient {
	return &SAPVirtualInstancesClient{subscriptionID: subscriptionID, client: client}
}

// NewListByResourceGroupPager gets all Virtual Instances for SAP solutions resources in a Resource Group.
func (c *SAPVirtualInstancesClient) NewListByResourceGroupPager(resourceGroupName string) *runtime.Pager[SAPVirtualInstanceList] {
	return armclient.NewListPager[SAPVirtualInstanceList](c.client,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Workloads/sapVirtualInstances",
		armclient.ListOptions{
			APIVersion: APIVersion,
			PathParams: map[string]string{
				"subscriptionId":    c.subscriptionID,
				"resourceGroupName": resourceGroupName,
			},
		})
}

// NewListBySubscriptionPager gets all Virtual Instances for SAP solutions resources in a Subscription.
func (c *SAPVirtualInstancesClient) NewListBySubscriptionPager() *runtime.Pager[SAPVirtualInstanceList] {
	return armclient.NewListPager[SAPVirtualInstanceList](c.client,
		"/subscriptions/{subscriptionId}/providers/Microsoft.Workloads/sapVirtualInstances",
		armclient.ListOptions{
			APIVersion: APIVersion,
			PathParams: map[string]string{"subscriptionId": c.subscriptionID},
		})
}

// ProviderInstancesClient lists the provider instances of an SAP monitor.
type ProviderInstancesClient struct {
	subscriptionID string
	client         *armclient.Client
}

// NewProviderInstancesClient creates a ProviderInstancesClient for the given subscription.
func NewProviderInstancesClient(subscriptionID string, client *armclient.Client) *ProviderInstancesClient {
	return &ProviderInstancesClient{subscriptionID: subscriptionID, client: client}
}

// NewListPager gets a list of provider instances in the specified SAP monitor.
func (c *ProviderInstancesClient) NewListPager(resourceGroupName, monitorName string) *runtime.Pager[ProviderInstanceListResult] {
	return armclient.NewListPager[ProviderInstanceListResult](c.client,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Workloads/monitors/{monitorName}/providerInstances",
		armclient.ListOptions{
			APIVersion: APIVersion,
			PathParams: map[string]string{
				"subscriptionId":    c.subscriptionID,
				"resourceGroupName": resourceGroupName,
				"monitorName":       monitorName,
			},
		})
}
