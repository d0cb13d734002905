// Package armclient is the HTTP plumbing shared by the model clients: an azcore
// pipeline bound to one service endpoint, request construction with the
// api-version query parameter, JSON response decoding and next-link paging.
package armclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/sirupsen/logrus"

	"github.com/gork-labs/azwire/internal/logging"
	"github.com/gork-labs/azwire/pkg/pager"
)

const (
	moduleName    = "azwire"
	moduleVersion = "v0.1.0"

	apiVersionParam = "api-version"
)

// Client sends requests to a single service endpoint.
type Client struct {
	endpoint   *url.URL
	apiVersion string
	pipeline   runtime.Pipeline
	log        *logrus.Entry
}

// New creates a client for endpoint. options may be nil; options.APIVersion,
// when set, overrides the api-version every operation would otherwise send.
// A nil log discards log output.
func New(endpoint string, options *policy.ClientOptions, log *logrus.Entry) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("endpoint %q is not an absolute URL", endpoint)
	}
	if options == nil {
		options = &policy.ClientOptions{}
	}
	if log == nil {
		log = logging.Discard()
	}

	return &Client{
		endpoint:   u,
		apiVersion: options.APIVersion,
		pipeline:   runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{}, options),
		log:        log,
	}, nil
}

// Endpoint returns the service endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

func (c *Client) version(fallback string) string {
	if c.apiVersion != "" {
		return c.apiVersion
	}
	return fallback
}

// NewRequest builds a request for path relative to the endpoint.
func (c *Client) NewRequest(ctx context.Context, method, path, apiVersion string) (*policy.Request, error) {
	req, err := runtime.NewRequest(ctx, method, runtime.JoinPaths(c.endpoint.String(), path))
	if err != nil {
		return nil, err
	}
	if v := c.version(apiVersion); v != "" {
		q := req.Raw().URL.Query()
		q.Set(apiVersionParam, v)
		req.Raw().URL.RawQuery = q.Encode()
	}
	req.Raw().Header["Accept"] = []string{"application/json"}
	return req, nil
}

// NextLinkRequest builds the GET request for a nextLink. Relative links are
// resolved against the endpoint's host; api-version is appended only when the
// link does not carry one already.
func (c *Client) NextLinkRequest(ctx context.Context, link, apiVersion string) (*policy.Request, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("next link: %w", err)
	}
	root := *c.endpoint
	root.Path, root.RawPath, root.RawQuery = "", "", ""
	u := root.ResolveReference(ref)

	if v := c.version(apiVersion); v != "" && !u.Query().Has(apiVersionParam) {
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += apiVersionParam + "=" + url.QueryEscape(v)
	}

	req, err := runtime.NewRequest(ctx, http.MethodGet, u.String())
	if err != nil {
		return nil, err
	}
	req.Raw().Header["Accept"] = []string{"application/json"}
	return req, nil
}

// Send runs req through the pipeline. A status outside statusCodes (200 when
// none are given) is returned as an *azcore.ResponseError. When v is not nil
// the body is decoded into it; decode errors are returned wrapped, never
// swallowed.
func (c *Client) Send(req *policy.Request, v any, statusCodes ...int) error {
	if len(statusCodes) == 0 {
		statusCodes = []int{http.StatusOK}
	}

	resp, err := c.pipeline.Do(req)
	if err != nil {
		return err
	}
	if !runtime.HasStatusCode(resp, statusCodes...) {
		return runtime.NewResponseError(resp)
	}
	if v == nil {
		return nil
	}

	payload, err := runtime.Payload(resp)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%s %s: %w", req.Raw().Method, req.Raw().URL.Path, err)
	}
	return nil
}

// ListOptions configures a list pager.
type ListOptions struct {
	// APIVersion is the operation's api-version; the client's override wins.
	APIVersion string

	// Query is added to the first request only, replacing any parameter of
	// the same name the client sets, api-version included. Next links carry
	// their own query.
	Query url.Values

	// PathParams fills the {name} placeholders of the list path.
	PathParams map[string]string
}

// NewListPager returns a pager over the list operation at path. The first
// request is GET path; later requests follow each page's next link.
func NewListPager[T pager.Page](c *Client, path string, opts ListOptions) *runtime.Pager[T] {
	return pager.New(func(ctx context.Context, link string) (T, error) {
		var page T

		var req *policy.Request
		var err error
		if link == "" {
			var p string
			if p, err = ExpandPath(path, opts.PathParams); err != nil {
				return page, err
			}
			req, err = c.NewRequest(ctx, http.MethodGet, p, opts.APIVersion)
			if err == nil && len(opts.Query) > 0 {
				q := req.Raw().URL.Query()
				for k, vs := range opts.Query {
					q[k] = append([]string(nil), vs...)
				}
				req.Raw().URL.RawQuery = q.Encode()
			}
		} else {
			req, err = c.NextLinkRequest(ctx, link, opts.APIVersion)
		}
		if err != nil {
			return page, err
		}

		c.log.WithField("url", req.Raw().URL.String()).Debug("fetching page")
		if err := c.Send(req, &page); err != nil {
			return *new(T), err
		}
		return page, nil
	})
}

// ExpandPath replaces every {name} placeholder in template with the
// path-escaped value of params[name]. A placeholder without a value, or with
// an empty one, is an error.
func ExpandPath(template string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("path %q: unterminated placeholder", template)
		}
		name := rest[open+1 : open+end]
		value := params[name]
		if value == "" {
			return "", fmt.Errorf("parameter %s cannot be empty", name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+end+1:]
	}
}

// RawPage is a list page whose items are left undecoded.
type RawPage struct {
	Value    []json.RawMessage `json:"value"`
	NextLink *string           `json:"nextLink,omitempty"`
}

// NextPageLink implements pager.Page.
func (p RawPage) NextPageLink() string {
	return pager.Link(p.NextLink)
}
