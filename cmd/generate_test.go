package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZacxDev/splugh/config"
)

const sampleYAML = `title: Home
pages:
  - title: A
    href: /a
    shortcut: a
`

// setFlags points the package flag variables at test values and restores
// the defaults afterwards. The cmd tests can not run in parallel.
func setFlags(t *testing.T, outDir, format string, forceFlag bool) {
	t.Helper()

	outputDirectory = outDir
	fileFormat = format
	force = forceFlag
	minify = false

	t.Cleanup(func() {
		outputDirectory = "splugh_dist"
		fileFormat = ""
		force = false
		minify = false
	})
}

func writeSource(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestGenerate(t *testing.T) {
	src := writeSource(t, "config.yaml", sampleYAML)
	outDir := filepath.Join(t.TempDir(), "dist")
	setFlags(t, outDir, "", false)

	require.NoError(t, runGenerate(src))

	html, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Home")
	assert.Contains(t, string(html), `href="/a"`)

	js, err := os.ReadFile(filepath.Join(outDir, "index.js"))
	require.NoError(t, err)
	assert.Contains(t, string(js), `"a":"/a"`)
}

func TestGenerateRefusesExistingOutputDir(t *testing.T) {
	src := writeSource(t, "config.yaml", sampleYAML)

	outDir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(outDir, os.ModePerm))
	marker := filepath.Join(outDir, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0644))

	setFlags(t, outDir, "", false)

	err := runGenerate(src)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, err.Error(), "already exists")

	// The directory is left untouched.
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestGenerateForceReplacesOutputDir(t *testing.T) {
	src := writeSource(t, "config.yaml", sampleYAML)

	outDir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(outDir, os.ModePerm))
	marker := filepath.Join(outDir, "stale.txt")
	require.NoError(t, os.WriteFile(marker, []byte("stale"), 0644))

	setFlags(t, outDir, "", true)

	require.NoError(t, runGenerate(src))

	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
}

func TestGenerateUnknownTypeFailsBeforeFileIO(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(outDir, os.ModePerm))
	marker := filepath.Join(outDir, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0644))

	// The source path does not exist; a format error must surface
	// before it is ever opened, and --force must not delete anything.
	setFlags(t, outDir, "xml", true)

	err := runGenerate(filepath.Join(t.TempDir(), "missing.conf"))
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "unsupported config format")

	_, err = os.Stat(marker)
	require.NoError(t, err)
}

func TestGenerateUnknownExtension(t *testing.T) {
	src := writeSource(t, "config.toml", sampleYAML)
	setFlags(t, filepath.Join(t.TempDir(), "dist"), "", false)

	err := runGenerate(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known format")
}

func TestGenerateTypeFlagOverridesExtension(t *testing.T) {
	// YAML contents behind a .json name; the explicit flag wins.
	src := writeSource(t, "config.json", sampleYAML)
	outDir := filepath.Join(t.TempDir(), "dist")
	setFlags(t, outDir, "yaml", false)

	require.NoError(t, runGenerate(src))

	_, err := os.Stat(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
}

func TestGenerateValidationFailureCreatesNothing(t *testing.T) {
	src := writeSource(t, "config.yaml", "pages:\n  - title: A\n    href: /a\n    shortcut: ab\n")
	outDir := filepath.Join(t.TempDir(), "dist")
	setFlags(t, outDir, "", false)

	err := runGenerate(src)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "title can not be blank")
	assert.Contains(t, verr.Error(), "pages[0].shortcut must be exactly one character")

	_, err = os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateMissingSource(t *testing.T) {
	setFlags(t, filepath.Join(t.TempDir(), "dist"), "", false)

	err := runGenerate(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
}
