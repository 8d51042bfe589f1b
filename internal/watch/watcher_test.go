package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/hugo"
)

type writes struct {
	mu    sync.Mutex
	sites []string
}

func (w *writes) record(_ string, cfg *config.Config) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sites = append(w.sites, cfg.SiteName)
}

func (w *writes) snapshot() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.sites...)
}

func newTestWatcher(t *testing.T, dir string, rec *writes) *Watcher {
	t.Helper()
	w, err := New(Options{
		Load: config.LoadOptions{
			OverlayPath: filepath.Join(dir, "siteconf.yaml"),
			HeaderPath:  filepath.Join(dir, "_nb_header.html"),
			SkipEnv:     true,
		},
		OutputDir: filepath.Join(dir, "out"),
		Format:    hugo.FormatYAML,
		Debounce:  20 * time.Millisecond,
		OnWrite:   rec.record,
	})
	require.NoError(t, err)
	return w
}

func TestReloadSkipsUnchangedSnapshot(t *testing.T) {
	dir := t.TempDir()
	rec := &writes{}
	w := newTestWatcher(t, dir, rec)
	t.Cleanup(func() { _ = w.watcher.Close() })
	ctx := context.Background()

	wrote, err := w.Reload(ctx)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.FileExists(t, filepath.Join(dir, "out", "hugo.yaml"))

	wrote, err = w.Reload(ctx)
	require.NoError(t, err)
	assert.False(t, wrote)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "siteconf.yaml"), []byte("site_name: Renamed\n"), 0o644))
	wrote, err = w.Reload(ctx)
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.Equal(t, []string{"Python Group UEA", "Renamed"}, rec.snapshot())
	assert.Equal(t, "Renamed", w.Current().SiteName)
}

func TestReloadRewritesOnStaticPathReorder(t *testing.T) {
	dir := t.TempDir()
	rec := &writes{}
	w := newTestWatcher(t, dir, rec)
	t.Cleanup(func() { _ = w.watcher.Close() })
	ctx := context.Background()

	_, err := w.Reload(ctx)
	require.NoError(t, err)

	overlay := "static_paths: [figures, pdfs, extra, extra/robots.txt, extra/favicon.ico, extra/custom.css]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "siteconf.yaml"), []byte(overlay), 0o644))
	wrote, err := w.Reload(ctx)
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(filepath.Join(dir, "out", "hugo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "staticDir:\n    - figures\n    - pdfs\n")
}

func TestReloadKeepsLastGoodConfig(t *testing.T) {
	dir := t.TempDir()
	rec := &writes{}
	w := newTestWatcher(t, dir, rec)
	t.Cleanup(func() { _ = w.watcher.Close() })
	ctx := context.Background()

	_, err := w.Reload(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "siteconf.yaml"), []byte("default_pagination: -1\n"), 0o644))
	_, err = w.Reload(ctx)
	require.Error(t, err)
	assert.Equal(t, 5, w.Current().DefaultPagination)
	assert.Len(t, rec.snapshot(), 1)
}

func TestRunRewritesOnHeaderChange(t *testing.T) {
	dir := t.TempDir()
	rec := &writes{}
	w := newTestWatcher(t, dir, rec)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "_nb_header.html"), []byte("<style></style>"), 0o644))
	require.Eventually(t, func() bool {
		cur := w.Current()
		return cur != nil && cur.Header == "<style></style>"
	}, 5*time.Second, 10*time.Millisecond)

	data, err := os.ReadFile(filepath.Join(dir, "out", "hugo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<style></style>")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestRunFailsOnInvalidInitialConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "siteconf.yaml"), []byte("disabled_feeds: [podcast]\n"), 0o644))
	w := newTestWatcher(t, dir, &writes{})

	err := w.Run(context.Background())
	assert.Error(t, err)
}
