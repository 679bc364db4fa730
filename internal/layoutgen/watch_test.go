package layoutgen

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type watchRun struct {
	res Result
	err error
}

func TestWatchRequiresOut(t *testing.T) {
	err := Watch(context.Background(), Config{UIInfoPath: ergodoxUIInfo}, func(Result, error) {})
	require.EqualError(t, err, "--watch requires --out")
}

func TestWatchRerendersOnChange(t *testing.T) {
	dir := t.TempDir()
	uiPath := filepath.Join(dir, "ui-info.json")
	write := func(code int) {
		payload := `{"mappings":{"matrix-positions":["K1"],"matrix-layout":[[[` +
			strconv.Itoa(code) + `,"kbfun_press_release","kbfun_press_release"]]]}}`
		require.NoError(t, os.WriteFile(uiPath, []byte(payload), 0o644))
	}
	write(4)

	cfg := Config{
		UIInfoPath: uiPath,
		OutPath:    filepath.Join(dir, "layout.html"),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", TemplateFile), []byte("<svg><text>K1</text></svg>"), 0o644))
	cfg.BuildScriptsDir = filepath.Join(dir, "scripts")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runs := make(chan watchRun, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, cfg, func(res Result, err error) { runs <- watchRun{res, err} })
	}()

	next := func() watchRun {
		select {
		case r := <-runs:
			return r
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for render")
			return watchRun{}
		}
	}

	first := next()
	require.NoError(t, first.err)
	assert.Equal(t, []string{"a A"}, first.res.Layers[0].Labels)

	write(5)
	second := next()
	require.NoError(t, second.err)
	assert.Equal(t, []string{"b B"}, second.res.Layers[0].Labels)

	doc, err := os.ReadFile(cfg.OutPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<text>b B</text>")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchTargets(t *testing.T) {
	files, dirs, err := watchTargets(Config{UIInfoPath: "a/ui.json", ConfigPath: "b/cfg.yaml", BuildScriptsDir: "c"})
	require.NoError(t, err)
	abs := func(p string) string {
		a, err := filepath.Abs(p)
		require.NoError(t, err)
		return a
	}
	assert.Len(t, files, 4)
	assert.True(t, files[abs("a/ui.json")])
	assert.True(t, files[abs(filepath.Join("c", TemplateFile))])
	assert.Equal(t, map[string]bool{abs("a"): true, abs("b"): true, abs("c"): true}, dirs)
}

func TestRelevantEvent(t *testing.T) {
	target, err := filepath.Abs("ui.json")
	require.NoError(t, err)
	files := map[string]bool{target: true}

	assert.True(t, relevantEvent(fsnotify.Event{Name: target, Op: fsnotify.Write}, files))
	assert.True(t, relevantEvent(fsnotify.Event{Name: target, Op: fsnotify.Create}, files))
	assert.False(t, relevantEvent(fsnotify.Event{Name: target, Op: fsnotify.Chmod}, files))
	assert.False(t, relevantEvent(fsnotify.Event{Name: target + ".swp", Op: fsnotify.Write}, files))
}
