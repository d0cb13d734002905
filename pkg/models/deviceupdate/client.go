package deviceupdate

import (
	"net/url"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/gork-labs/azwire/pkg/armclient"
)

// DevicesClient lists the devices registered with a Device Update instance.
// The data plane takes no api-version.
type DevicesClient struct {
	instanceID string
	client     *armclient.Client
}

// NewDevicesClient creates a DevicesClient for the account instance instanceID.
func NewDevicesClient(instanceID string, client *armclient.Client) *DevicesClient {
	return &DevicesClient{instanceID: instanceID, client: client}
}

// DevicesClientListOptions contains the optional parameters for DevicesClient.NewListPager.
type DevicesClientListOptions struct {
	// Restricts the set of devices returned. You can only filter on device GroupId.
	Filter *string
}

// NewListPager gets a list of devices connected to Device Update for IoT Hub.
func (c *DevicesClient) NewListPager(options *DevicesClientListOptions) *runtime.Pager[DevicesList] {
	q := url.Values{}
	if options != nil && options.Filter != nil {
		q.Set("$filter", *options.Filter)
	}
	return armclient.NewListPager[DevicesList](c.client,
		"/deviceupdate/{instanceId}/v2/management/devices",
		armclient.ListOptions{
			Query:      q,
			PathParams: map[string]string{"instanceId": c.instanceID},
		})
}

// OperationsClient lists update import and delete operations.
type OperationsClient struct {
	instanceID string
	client     *armclient.Client
}

// NewOperationsClient creates an OperationsClient for the account instance instanceID.
func NewOperationsClient(instanceID string, client *armclient.Client) *OperationsClient {
	return &OperationsClient{instanceID: instanceID, client: client}
}

// OperationsClientListOptions contains the optional parameters for OperationsClient.NewListPager.
type OperationsClientListOptions struct {
	// Restricts the set of operations returned. Only one specific filter is supported: "status eq 'NotStarted' or status eq
	// 'Running'"
	Filter *string

	// Specifies a non-negative integer n that limits the number of items returned from a collection.
	Top *int32
}

// NewListPager gets a list of all import update operations.
func (c *OperationsClient) NewListPager(options *OperationsClientListOptions) *runtime.Pager[OperationsList] {
	q := url.Values{}
	if options != nil {
		if options.Filter != nil {
			q.Set("$filter", *options.Filter)
		}
		if options.Top != nil {
			q.Set("$top", strconv.FormatInt(int64(*options.Top), 10))
		}
	}
	return armclient.NewListPager[OperationsList](c.client,
		"/deviceupdate/{instanceId}/v2/updates/operations",
		armclient.ListOptions{
			Query:      q,
			PathParams: map[string]string{"instanceId": c.instanceID},
		})
}
