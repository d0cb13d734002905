package armclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gork-labs/azwire/pkg/pager"
)

const testAPIVersion = "2021-10-01"

func TestNewRejectsRelativeEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "/subscriptions", "management.azure.com", "://bad"} {
		_, err := New(endpoint, nil, nil)
		assert.Error(t, err, endpoint)
	}

	c, err := New("https://management.azure.com", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://management.azure.com", c.Endpoint())
}

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name     string
		override string
		want     string
	}{
		{
			name: "operation version",
			want: "https://management.example.com/base/items?api-version=2021-10-01",
		},
		{
			name:     "client override",
			override: "2099-01-01",
			want:     "https://management.example.com/base/items?api-version=2099-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("https://management.example.com/base", &policy.ClientOptions{APIVersion: tt.override}, nil)
			require.NoError(t, err)

			req, err := c.NewRequest(context.Background(), http.MethodGet, "/items", testAPIVersion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Raw().URL.String())
			assert.Equal(t, "application/json", req.Raw().Header.Get("Accept"))
		})
	}
}

func TestNextLinkRequest(t *testing.T) {
	c, err := New("https://management.example.com/base", nil, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "relative link resolved against host",
			link: "/subscriptions/s1/outputs?$skiptoken=abc",
			want: "https://management.example.com/subscriptions/s1/outputs?$skiptoken=abc&api-version=2021-10-01",
		},
		{
			name: "absolute link keeps its host",
			link: "https://other.example.com/list?page=2",
			want: "https://other.example.com/list?page=2&api-version=2021-10-01",
		},
		{
			name: "existing api-version is kept",
			link: "https://other.example.com/list?api-version=2019-01-01&page=2",
			want: "https://other.example.com/list?api-version=2019-01-01&page=2",
		},
		{
			name: "link without query",
			link: "/list",
			want: "https://management.example.com/list?api-version=2021-10-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := c.NextLinkRequest(context.Background(), tt.link, testAPIVersion)
			require.NoError(t, err)
			assert.Equal(t, http.MethodGet, req.Raw().Method)
			assert.Equal(t, tt.want, req.Raw().URL.String())
		})
	}
}

// listServer serves three pages under /items: the first links relatively,
// the second absolutely, the third ends the list.
type listServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newListServer(t *testing.T) *listServer {
	s := &listServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.RequestURI())
		s.mu.Unlock()

		if got := r.URL.Query()["api-version"]; len(got) != 1 || got[0] != testAPIVersion {
			http.Error(w, `{"error":{"code":"BadApiVersion"}}`, http.StatusBadRequest)
			return
		}

		var page map[string]any
		switch r.URL.Query().Get("page") {
		case "":
			page = map[string]any{"value": []any{1, 2}, "nextLink": "/items?page=2"}
		case "2":
			page = map[string]any{"value": []any{3}, "nextLink": s.URL + "/items?page=3"}
		case "3":
			page = map[string]any{"value": []any{4}, "nextLink": ""}
		default:
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *listServer) newClient(t *testing.T, log *logrus.Entry) *Client {
	c, err := New(s.URL, &policy.ClientOptions{Transport: s.Client()}, log)
	require.NoError(t, err)
	return c
}

func TestListPager(t *testing.T) {
	srv := newListServer(t)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c := srv.newClient(t, logrus.NewEntry(logger))

	items, err := pager.Collect(context.Background(), NewListPager[RawPage](c, "/items", ListOptions{APIVersion: testAPIVersion}), func(p RawPage) []json.RawMessage {
		return p.Value
	})
	require.NoError(t, err)

	var got []int
	for _, raw := range items {
		var n int
		require.NoError(t, json.Unmarshal(raw, &n))
		got = append(got, n)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	assert.Equal(t, []string{
		"/items?api-version=2021-10-01",
		"/items?page=2&api-version=2021-10-01",
		"/items?page=3&api-version=2021-10-01",
	}, srv.requests)

	require.Len(t, hook.AllEntries(), 3)
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.DebugLevel, e.Level)
		assert.Equal(t, "fetching page", e.Message)
	}
}

func TestListPagerQueryOnFirstRequest(t *testing.T) {
	srv := newListServer(t)
	c := srv.newClient(t, nil)

	p := NewListPager[RawPage](c, "/items", ListOptions{
		APIVersion: testAPIVersion,
		Query:      url.Values{"$top": []string{"2"}},
	})
	_, err := pager.Collect(context.Background(), p, func(p RawPage) []json.RawMessage { return p.Value })
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/items?%24top=2&api-version=2021-10-01",
		"/items?page=2&api-version=2021-10-01",
		"/items?page=3&api-version=2021-10-01",
	}, srv.requests)
}

func TestListPagerQueryReplacesAPIVersion(t *testing.T) {
	srv := newListServer(t)
	c := srv.newClient(t, nil)

	p := NewListPager[RawPage](c, "/items", ListOptions{
		APIVersion: testAPIVersion,
		Query:      url.Values{"api-version": []string{testAPIVersion}, "$top": []string{"2"}},
	})
	items, err := pager.Collect(context.Background(), p, func(p RawPage) []json.RawMessage { return p.Value })
	require.NoError(t, err)
	assert.Len(t, items, 4)

	assert.Equal(t, "/items?%24top=2&api-version=2021-10-01", srv.requests[0])
}

func TestSendUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"ResourceNotFound","message":"job not found"}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, &policy.ClientOptions{Transport: srv.Client()}, nil)
	require.NoError(t, err)

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/jobs/j1", testAPIVersion)
	require.NoError(t, err)

	err = c.Send(req, &RawPage{})
	var respErr *azcore.ResponseError
	require.True(t, errors.As(err, &respErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
	assert.Equal(t, "ResourceNotFound", respErr.ErrorCode)
}

func TestSendDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": 5}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, &policy.ClientOptions{Transport: srv.Client()}, nil)
	require.NoError(t, err)

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/items", testAPIVersion)
	require.NoError(t, err)

	err = c.Send(req, &RawPage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /items")

	var typeErr *json.UnmarshalTypeError
	assert.True(t, errors.As(err, &typeErr))
}

func TestSendAcceptsListedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := New(srv.URL, &policy.ClientOptions{Transport: srv.Client()}, nil)
	require.NoError(t, err)

	req, err := c.NewRequest(context.Background(), http.MethodDelete, "/items/1", testAPIVersion)
	require.NoError(t, err)
	assert.NoError(t, c.Send(req, nil, http.StatusOK, http.StatusNoContent))
}

func TestListPagerCancelled(t *testing.T) {
	srv := newListServer(t)
	c := srv.newClient(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewListPager[RawPage](c, "/items", ListOptions{APIVersion: testAPIVersion}).NextPage(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpandPath(t *testing.T) {
	const template = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/outputs"

	got, err := ExpandPath(template, map[string]string{
		"subscriptionId":    "sub-1",
		"resourceGroupName": "my rg/1",
	})
	require.NoError(t, err)
	assert.Equal(t, "/subscriptions/sub-1/resourceGroups/my%20rg%2F1/outputs", got)

	_, err = ExpandPath(template, map[string]string{"subscriptionId": "sub-1"})
	assert.EqualError(t, err, "parameter resourceGroupName cannot be empty")

	_, err = ExpandPath("/jobs/{jobName", map[string]string{"jobName": "j"})
	assert.Error(t, err)

	got, err = ExpandPath("/keys", nil)
	require.NoError(t, err)
	assert.Equal(t, "/keys", got)
}

func TestListPagerMissingPathParam(t *testing.T) {
	srv := newListServer(t)
	c := srv.newClient(t, nil)

	p := NewListPager[RawPage](c, "/jobs/{jobName}/items", ListOptions{APIVersion: testAPIVersion})
	_, err := p.NextPage(context.Background())
	assert.EqualError(t, err, "parameter jobName cannot be empty")
	assert.Empty(t, srv.requests)
}
