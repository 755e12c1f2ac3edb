package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/api"
	"github.com/punnatorn6420/Nokair-Platform/internal/cli"
	"github.com/punnatorn6420/Nokair-Platform/internal/client"
	"github.com/punnatorn6420/Nokair-Platform/internal/events"
	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func (m *memStore) Get(_ context.Context, slug string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[slug]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return d, nil
}

func (m *memStore) Upsert(_ context.Context, slug string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[slug] = data
	return nil
}

func newBackend(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()

	store := &memStore{docs: map[string][]byte{}}
	router := gin.New()
	api.RegisterAdminRoutes(router, api.NewLayoutHandler(store, logger.NewNop(), api.WithWriter(store)))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, store
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNormalize_Page(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `{"route":"other","components":[{"id":"a","type":"hero","props":{"title":"Hi"}}]}`)
	out, err := run(t, "", "normalize", "--route", "promo", path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "promo", doc["route"])
	components, ok := doc["components"].([]any)
	require.True(t, ok)
	require.Len(t, components, 1)
}

func TestNormalize_LayoutFromStdin(t *testing.T) {
	t.Parallel()

	out, err := run(t, `{}`, "normalize", "--kind", "layout", "-")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "header")
	assert.Contains(t, doc, "footer")
	assert.Contains(t, doc, "homepage")
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "invalid json", args: []string{"normalize", "-"}, want: "invalid JSON"},
		{name: "unknown kind", args: []string{"normalize", "--kind", "post", "-"}, want: "unknown kind"},
		{name: "missing file", args: []string{"normalize", filepath.Join(t.TempDir(), "nope.json")}, want: "read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := run(t, "{not json", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_Page(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `{"components":[{"id":"a","type":"hero","props":{"title":"Hi"}}]}`)
	out, err := run(t, "", "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, `data-component="hero"`)
	assert.NotContains(t, out, "<html")

	doc, err := run(t, "", "render", "--document", path)
	require.NoError(t, err)
	assert.Contains(t, doc, "<html")
}

func TestRender_Layout(t *testing.T) {
	t.Parallel()

	out, err := run(t, `{}`, "render", "--kind", "layout", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `data-section=`)
}

func TestPushThenPull(t *testing.T) {
	t.Parallel()

	srv, store := newBackend(t)

	out, err := run(t, `{"header":{"logoAlt":"Nok Air"}}`, "--api-url", srv.URL, "push", "nokair", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "pushed nokair")
	assert.Contains(t, store.docs, "nokair")

	pulled, err := run(t, "", "--api-url", srv.URL, "pull", "nokair")
	require.NoError(t, err)
	assert.JSONEq(t, `{"header":{"logoAlt":"Nok Air"}}`, pulled)
}

func TestPush_NormalizesWithKind(t *testing.T) {
	t.Parallel()

	srv, store := newBackend(t)

	_, err := run(t, `{"components":[]}`, "--api-url", srv.URL, "push", "--kind", "page", "promo", "-")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(store.docs["promo"], &doc))
	assert.Equal(t, "promo", doc["route"])
}

func TestPush_RejectsNonObject(t *testing.T) {
	t.Parallel()

	srv, store := newBackend(t)

	_, err := run(t, `[1,2]`, "--api-url", srv.URL, "push", "nokair", "-")
	require.Error(t, err)
	assert.Empty(t, store.docs)
}

func TestPull_NotFound(t *testing.T) {
	t.Parallel()

	srv, _ := newBackend(t)

	_, err := run(t, "", "--api-url", srv.URL, "pull", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pull missing")
}

func TestPull_RequiresAPIURL(t *testing.T) {
	t.Setenv("PAGECTL_API_URL", "")

	_, err := run(t, "", "pull", "nokair")
	require.ErrorIs(t, err, client.ErrNotConfigured)
}

func TestPull_APIURLFromEnvironment(t *testing.T) {
	srv, store := newBackend(t)
	store.docs["nokair"] = []byte(`{"footer":{}}`)
	t.Setenv("PAGECTL_API_URL", srv.URL)

	out, err := run(t, "", "pull", "nokair")
	require.NoError(t, err)
	assert.JSONEq(t, `{"footer":{}}`, out)
}

func TestEvents(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	out, err := run(t, "", "--redis-addr", mr.Addr(), "events")
	require.NoError(t, err)
	assert.Equal(t, "no events\n", out)

	pub := events.NewPublisher(rdb, logger.NewNop())
	require.NoError(t, pub.Publish(context.Background(), events.LayoutUpdated("nokair")))

	out, err = run(t, "", "--redis-addr", mr.Addr(), "events", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "layout.updated")
	assert.Contains(t, out, "nokair")
}
