package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTheme(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		theme, err := LoadTheme("")
		require.NoError(t, err)
		assert.Contains(t, theme, "TabCurrent")
		assert.Contains(t, theme, "TabFill")
	})

	t.Run("overrides merge over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		contents := `
TabCurrent:
  fg: "129"
  bold: true
MyCustomStyle:
  bg: "#ff0000"
`
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		theme, err := LoadTheme(path)
		require.NoError(t, err)

		assert.Equal(t, lipgloss.Color("129"), theme["TabCurrent"].GetForeground())
		assert.True(t, theme["TabCurrent"].GetBold())
		assert.Equal(t, lipgloss.Color("#ff0000"), theme["MyCustomStyle"].GetBackground())
		// untouched defaults survive
		assert.Contains(t, theme, "TabInactive")
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadTheme(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

		_, err := LoadTheme(path)
		assert.Error(t, err)
	})
}
