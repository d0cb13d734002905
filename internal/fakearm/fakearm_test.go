package fakearm

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPages(t *testing.T) {
	s := New(t)
	s.Pages("/subscriptions/{subscriptionId}/widgets", `[1,2]`, `[3]`)

	status, body := get(t, s.URL+"/subscriptions/sub-1/widgets?api-version=1")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"value":[1,2],"nextLink":"/subscriptions/sub-1/widgets?page=2"}`, body)

	status, body = get(t, s.URL+"/subscriptions/sub-1/widgets?page=2")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"value":[3]}`, body)

	status, _ = get(t, s.URL+"/subscriptions/sub-1/widgets?page=3")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, s.URL+"/elsewhere")
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, []string{
		"/subscriptions/sub-1/widgets?api-version=1",
		"/subscriptions/sub-1/widgets?page=2",
		"/subscriptions/sub-1/widgets?page=3",
		"/elsewhere",
	}, s.Requests())
}

func TestFail(t *testing.T) {
	s := New(t)
	s.Fail("/keys", http.StatusForbidden, "Forbidden", "denied")

	status, body := get(t, s.URL+"/keys")
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"error":{"code":"Forbidden","message":"denied"}}`, body)
}
