package keyvault

import (
	"net/url"
	"strconv"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/gork-labs/azwire/pkg/armclient"
)

// APIVersion is the api-version sent by the clients in this package.
const APIVersion = "7.3-preview"

// KeysClient lists the keys of one vault. The vault URL is the client's
// endpoint.
type KeysClient struct {
	client *armclient.Client
}

// NewKeysClient creates a KeysClient.
func NewKeysClient(client *armclient.Client) *KeysClient {
	return &KeysClient{client: client}
}

// KeysClientListOptions contains the optional parameters for KeysClient.NewListPager.
type KeysClientListOptions struct {
	// Maximum number of results to return in a page. If not specified the service will return up to 25 results.
	MaxResults *int32
}

// NewListPager retrieves a list of individual keys stored in the vault. Only
// the public part of each key and its attributes are returned.
func (c *KeysClient) NewListPager(options *KeysClientListOptions) *runtime.Pager[KeyListResult] {
	q := url.Values{}
	if options != nil && options.MaxResults != nil {
		q.Set("maxresults", strconv.FormatInt(int64(*options.MaxResults), 10))
	}
	return armclient.NewListPager[KeyListResult](c.client, "/keys", armclient.ListOptions{
		APIVersion: APIVersion,
		Query:      q,
	})
}
