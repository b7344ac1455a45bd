package update

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, status int, body string) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "obsidian-cli", r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestChecker_Latest(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		current string
		want    string
		ok      bool
	}{
		{name: "newer", status: 200, body: `{"tag_name":"v0.2.0"}`, current: "0.1.2", want: "0.2.0", ok: true},
		{name: "same", status: 200, body: `{"tag_name":"v0.1.2"}`, current: "0.1.2"},
		{name: "older", status: 200, body: `{"tag_name":"v0.1.0"}`, current: "0.1.2"},
		{name: "non semver differs", status: 200, body: `{"tag_name":"nightly"}`, current: "0.1.2", want: "nightly", ok: true},
		{name: "missing tag", status: 200, body: `{}`, current: "0.1.2"},
		{name: "server error", status: 500, body: `oops`, current: "0.1.2"},
		{name: "bad json", status: 200, body: `not json`, current: "0.1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Checker{URL: releaseServer(t, tt.status, tt.body), Current: tt.current}
			got, ok := c.Latest(context.Background())
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := &Checker{URL: url, Current: "0.1.2"}
	_, ok := c.Latest(context.Background())
	assert.False(t, ok)
}

func TestRunner_Run(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{Shell: "sh", Script: "echo installed"}
	require.NoError(t, r.Run(context.Background(), &stdout, &stderr))
	assert.Equal(t, "installed\n", stdout.String())
}

func TestRunner_Run_Failure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &Runner{Shell: "sh", Script: "exit 3"}
	err := r.Run(context.Background(), &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, "Update failed with code 3", err.Error())
}
