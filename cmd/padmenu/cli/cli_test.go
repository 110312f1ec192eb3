package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pawndev/padmenu/pkg/padmenu"
	"github.com/pawndev/padmenu/pkg/padmenu/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../../pkg/padmenu/menufile/testdata"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateReportsMenus(t *testing.T) {
	out, err := execute(t, "validate", filepath.Join(testdata, "settings.toml"))

	require.NoError(t, err)
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "difficulty")
	assert.Contains(t, out, "ok")
}

func TestValidateFailsOnHiddenMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hidden.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
menus:
  - name: main
    items:
      - label: ghost
        flags: [hidden]
`), 0o644))

	out, err := execute(t, "validate", path)

	assert.Error(t, err)
	assert.Contains(t, out, "no visible items")
}

func TestValidateNeedsAFile(t *testing.T) {
	_, err := execute(t, "validate")
	assert.Error(t, err)
}

func TestRunRejectsUnknownBackend(t *testing.T) {
	_, err := execute(t, "run", "--backend", "vga", filepath.Join(testdata, "settings.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestRunRejectsMissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWaitHookStopsOnCancelledContext(t *testing.T) {
	var out bytes.Buffer
	input := term.NewInputFromReader(strings.NewReader(""))
	surface := term.NewSurface(&out, 30, 6, false)
	engine := padmenu.NewEngine(padmenu.EngineOptions{
		Surface: surface,
		Input:   input,
		Abort:   input,
		Logger:  slog.New(slog.DiscardHandler),
	})
	hooks := builtinHooks(slog.New(slog.DiscardHandler), engine)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := hooks["wait"](ctx, "wait")

	require.ErrorIs(t, err, padmenu.ErrAborted)
	assert.Contains(t, out.String(), "Working...")
}

func TestValidateHooksRunWithoutEngine(t *testing.T) {
	hooks := builtinHooks(slog.New(slog.DiscardHandler), nil)
	require.Contains(t, hooks, "log")
	assert.NoError(t, hooks["log"](context.Background(), "x"))
}
