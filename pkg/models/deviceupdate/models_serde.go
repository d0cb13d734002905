package deviceupdate

import "github.com/gork-labs/azwire/pkg/pager"

// NextPageLink implements pager.Page.
func (l DevicesList) NextPageLink() string { return pager.Link(l.NextLink) }

// NextPageLink implements pager.Page.
func (l OperationsList) NextPageLink() string { return pager.Link(l.NextLink) }
