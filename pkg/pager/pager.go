// Package pager walks list endpoints that return their results one page at a
// time, each page naming the next in a nextLink field.
package pager

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Page is a single response page. NextPageLink returns "" on the last page,
// whether the nextLink field was absent or empty.
type Page interface {
	NextPageLink() string
}

// Fetcher retrieves one page. link is "" for the first page and the previous
// page's NextPageLink afterwards.
type Fetcher[T any] func(ctx context.Context, link string) (T, error)

// New returns a pager that fetches pages strictly one after the other. No
// request is issued after a page without a next link.
func New[T Page](fetch Fetcher[T]) *runtime.Pager[T] {
	return runtime.NewPager(runtime.PagingHandler[T]{
		More: func(page T) bool {
			return page.NextPageLink() != ""
		},
		Fetcher: func(ctx context.Context, current *T) (T, error) {
			var link string
			if current != nil {
				link = (*current).NextPageLink()
			}
			return fetch(ctx, link)
		},
	})
}

// Walk calls fn for every page until the pager is exhausted, a fetch fails,
// or fn returns an error.
func Walk[T any](ctx context.Context, p *runtime.Pager[T], fn func(T) error) error {
	for p.More() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
	}
	return nil
}

// Collect walks every page and concatenates the items extracted by items.
func Collect[T, I any](ctx context.Context, p *runtime.Pager[T], items func(T) []I) ([]I, error) {
	var all []I
	err := Walk(ctx, p, func(page T) error {
		all = append(all, items(page)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

// Link dereferences an optional nextLink field.
func Link(nextLink *string) string {
	if nextLink == nil {
		return ""
	}
	return *nextLink
}
