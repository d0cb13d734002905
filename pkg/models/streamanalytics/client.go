package streamanalytics

import (
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/gork-labs/azwire/pkg/armclient"
)

// APIVersion is the api-version sent by the clients in this package.
const APIVersion = "2020-03-01"

// OutputsClient lists the outputs of a streaming job.
type OutputsClient struct {
	subscriptionID string
	client         *armclient.Client
}

// NewOutputsClient creates an OutputsClient for the given subscription.
func NewOutputsClient(subscriptionID string, client *armclient.Client) *OutputsClient {
	return &OutputsClient{subscriptionID: subscriptionID, client: client}
}

// OutputsClientListByStreamingJobOptions contains the optional parameters for
// OutputsClient.NewListByStreamingJobPager.
type OutputsClientListByStreamingJobOptions struct {
	// The $select OData query parameter, e.g. "*" to include the output's diagnostics.
	Select *string
}

// NewListByStreamingJobPager lists all of the outputs under the specified streaming job.
func (c *OutputsClient) NewListByStreamingJobPager(resourceGroupName, jobName string, options *OutputsClientListByStreamingJobOptions) *runtime.Pager[OutputListResult] {
	query := url.Values{}
	if options != nil && options.Select != nil {
		query.Set("$select", *options.Select)
	}
	return armclient.NewListPager[OutputListResult](c.client,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.StreamAnalytics/streamingjobs/{jobName}/outputs",
		armclient.ListOptions{
			APIVersion: APIVersion,
			Query:      query,
			PathParams: map[string]string{
				"subscriptionId":    c.subscriptionID,
				"resourceGroupName": resourceGroupName,
				"jobName":           jobName,
			},
		})
}

// StreamingJobsClient lists streaming jobs.
type StreamingJobsClient struct {
	subscriptionID string
	client         *armclient.Client
}

// NewStreamingJobsClient creates a StreamingJobsClient for the given subscription.
func NewStreamingJobsClient(subscriptionID string, client *armclient.Client) *StreamingJobsClient {
	return &StreamingJobsClient{subscriptionID: subscriptionID, client: client}
}

// NewListByResourceGroupPager lists all of the streaming jobs in the specified resource group.
func (c *StreamingJobsClient) NewListByResourceGroupPager(resourceGroupName string) *runtime.Pager[StreamingJobListResult] {
	return armclient.NewListPager[StreamingJobListResult](c.client,
		"/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.StreamAnalytics/streamingjobs",
		armclient.ListOptions{
			APIVersion: APIVersion,
			PathParams: map[string]string{
				"subscriptionId":    c.subscriptionID,
				"resourceGroupName": resourceGroupName,
			},
		})
}
