package streamanalytics

import (
	"encoding/json"

	"github.com/gork-labs/azwire/pkg/pager"
)

// UnmarshalJSON implements json.Unmarshaler; an absent authenticationMode
// decodes as ConnectionString.
func (p *BlobOutputDataSourceProperties) UnmarshalJSON(data []byte) error {
	type alias BlobOutputDataSourceProperties
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	p.AuthenticationMode = authenticationModes.OrDefault(p.AuthenticationMode)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler; an absent authenticationMode
// decodes as ConnectionString.
func (p *ServiceBusQueueOutputDataSourceProperties) UnmarshalJSON(data []byte) error {
	type alias ServiceBusQueueOutputDataSourceProperties
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	p.AuthenticationMode = authenticationModes.OrDefault(p.AuthenticationMode)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler; an absent authenticationMode
// decodes as ConnectionString.
func (p *EventHubOutputDataSourceProperties) UnmarshalJSON(data []byte) error {
	type alias EventHubOutputDataSourceProperties
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	p.AuthenticationMode = authenticationModes.OrDefault(p.AuthenticationMode)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler; an absent authenticationMode
// decodes as ConnectionString.
func (p *AzureSQLDatabaseOutputDataSourceProperties) UnmarshalJSON(data []byte) error {
	type alias AzureSQLDatabaseOutputDataSourceProperties
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	p.AuthenticationMode = authenticationModes.OrDefault(p.AuthenticationMode)
	return nil
}

// NextPageLink implements pager.Page.
func (r OutputListResult) NextPageLink() string { return pager.Link(r.NextLink) }

// NextPageLink implements pager.Page.
func (r StreamingJobListResult) NextPageLink() string { return pager.Link(r.NextLink) }
