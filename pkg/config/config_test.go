package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte(`output: json
template: '{{ .Felt }}'
pad: true
verbose: true
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Output)
	require.Equal(t, "{{ .Felt }}", cfg.Template)
	require.True(t, cfg.Pad)
	require.True(t, cfg.Verbose)
	require.Equal(t, path, cfg.Path())
}

func TestReadConfig_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Output)
	require.False(t, cfg.Pad)
}

func TestReadConfig_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0644))

	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestReadConfig_ExplicitPathMustExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestReadConfig_DefaultPathMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg, err := ReadConfig("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".felt", "config"), cfg.Path())
}

func TestSet(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Set("output", "hex"))
	require.NoError(t, cfg.Set("template", "{{ .String }}"))
	require.NoError(t, cfg.Set("pad", "true"))
	require.NoError(t, cfg.Set("verbose", "1"))

	require.Equal(t, "hex", cfg.Output)
	require.Equal(t, "{{ .String }}", cfg.Template)
	require.True(t, cfg.Pad)
	require.True(t, cfg.Verbose)

	require.Error(t, cfg.Set("pad", "maybe"))
	require.Error(t, cfg.Set("colour", "red"))
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("output", "raw"))
	require.NoError(t, cfg.Set("pad", "true"))
	require.NoError(t, cfg.Write())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reread, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "raw", reread.Output)
	require.True(t, reread.Pad)
}

func TestWrite_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	cfg := Config{Output: "json"}
	require.NoError(t, cfg.Write())

	b, err := os.ReadFile(filepath.Join(home, ".felt", "config"))
	require.NoError(t, err)
	require.Equal(t, "output: json\n", string(b))
}

func TestKeys(t *testing.T) {
	k := Keys()
	require.Equal(t, []string{"output", "template", "pad", "verbose"}, k)
	k[0] = "changed"
	require.Equal(t, "output", Keys()[0])
}
