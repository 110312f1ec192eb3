package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const spanish = `
"menu.back" = "ATRÁS"
greeting = "Hola"
`

func writeSpanish(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "active.es.toml")
	require.NoError(t, os.WriteFile(path, []byte(spanish), 0o644))
	return path
}

func TestResolveBuiltInLabels(t *testing.T) {
	r, err := NewResolver(nil)
	require.NoError(t, err)

	assert.Equal(t, "OK", r.Resolve("menu.ok"))
	assert.Equal(t, "BACK", r.Resolve("menu.back"))
	assert.Equal(t, "Volume", r.Resolve("Volume"))
	assert.Equal(t, "", r.Resolve(""))
}

func TestResolveFromMessageFile(t *testing.T) {
	r, err := NewResolver([]string{writeSpanish(t)}, "es")
	require.NoError(t, err)

	assert.Equal(t, "Hola", r.Resolve("greeting"))
	assert.Equal(t, "ATRÁS", r.Resolve("menu.back"))
	assert.Equal(t, "unknown.id", r.Resolve("unknown.id"))

	english := r.WithLanguage(language.English)
	assert.Equal(t, "BACK", english.Resolve("menu.back"))
}

func TestNewResolverLoadsFiles(t *testing.T) {
	r, err := NewResolver([]string{writeSpanish(t)}, "es")
	require.NoError(t, err)
	assert.Equal(t, "Hola", r.Resolve("greeting"))

	_, err = NewResolver([]string{filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestNilResolverReturnsLabel(t *testing.T) {
	var r *Resolver
	assert.Equal(t, "menu.ok", r.Resolve("menu.ok"))
}

func TestDefaultResolver(t *testing.T) {
	require.NoError(t, InitI18N([]string{writeSpanish(t)}))
	t.Cleanup(func() { setDefault(nil) })

	assert.Equal(t, "greeting", GetString("greeting"))

	require.NoError(t, SetWithCode("es"))
	assert.Equal(t, "Hola", GetString("greeting"))
	assert.Same(t, Default(), Default())

	assert.Error(t, SetWithCode("not a language!"))
}
