package padmenu

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pawndev/padmenu/pkg/padmenu/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLabelsFollowLanguageChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active.es.toml")
	require.NoError(t, os.WriteFile(path, []byte(`"menu.back" = "ATRÁS"`), 0o644))

	engine := NewEngine(EngineOptions{
		Surface: newFakeSurface(4),
		Labels:  DefaultLabels(),
		Logger:  slog.New(slog.DiscardHandler),
	})

	require.NoError(t, i18n.InitI18N([]string{path}))
	t.Cleanup(func() { _ = i18n.InitI18N(nil) })
	assert.Equal(t, "BACK", engine.resolve(LabelBack))

	require.NoError(t, i18n.SetWithCode("es"))
	assert.Equal(t, "ATRÁS", engine.resolve(LabelBack))
	assert.Equal(t, "Volume", engine.resolve("Volume"))
}
