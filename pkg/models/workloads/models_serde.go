package workloads

import "github.com/gork-labs/azwire/pkg/pager"

// NextPageLink implements pager.Page.
func (l SAPVirtualInstanceList) NextPageLink() string { return pager.Link(l.NextLink) }

// NextPageLink implements pager.Page.
func (r ProviderInstanceListResult) NextPageLink() string { return pager.Link(r.NextLink) }
