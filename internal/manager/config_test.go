package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hoppxi/iconify/internal/icons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViperDefaults(t *testing.T) {
	testChdir(t, t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	assert.Empty(t, v.ConfigFileUsed())

	s, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, Settings{
		InputDir:    icons.DefaultInputDir,
		OutputDir:   icons.DefaultOutputDir,
		StrictNames: true,
		Debounce:    300 * time.Millisecond,
	}, s)
}

func TestNewViperWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iconify.yaml"), []byte("input_dir: ./incoming\nkeep_going: true\ndebounce: 1s\n"), 0o644))

	v, err := NewViper("")
	require.NoError(t, err)

	s, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "./incoming", s.InputDir)
	assert.Equal(t, icons.DefaultOutputDir, s.OutputDir)
	assert.True(t, s.KeepGoing)
	assert.Equal(t, time.Second, s.Debounce)
}

func TestNewViperExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: ./out\nstrict_names: false\n"), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	assert.Equal(t, path, v.ConfigFileUsed())

	s, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "./out", s.OutputDir)
	assert.False(t, s.StrictNames)
}

func TestNewViperExplicitFileMissing(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewViperBrokenFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iconify.yaml"), []byte("input_dir: [unclosed\n"), 0o644))

	_, err := NewViper("")
	assert.Error(t, err)
}

func TestNewViperEnv(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("ICONIFY_OUTPUT_DIR", "/tmp/icons")
	t.Setenv("ICONIFY_NOTIFY", "true")

	v, err := NewViper("")
	require.NoError(t, err)

	s, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/icons", s.OutputDir)
	assert.True(t, s.Notify)
}

func TestSettingsTransformer(t *testing.T) {
	tr := Settings{InputDir: "in", OutputDir: "out", KeepGoing: true}.Transformer()

	assert.Equal(t, "in", tr.InputDir)
	assert.Equal(t, "out", tr.OutputDir)
	assert.True(t, tr.KeepGoing)
	assert.False(t, tr.StrictNames)
}

// testChdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
