package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_FindsSQLFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sql", "SELECT 1")
	b := writeFile(t, dir, "models/b.sqlx", "SELECT 2")
	writeFile(t, dir, "README.md", "not sql")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestDiscover_SkipsHiddenAndVendored(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "q.sql", "SELECT 1")
	writeFile(t, dir, ".hidden/h.sql", "SELECT 1")
	writeFile(t, dir, "node_modules/dep/d.sql", "SELECT 1")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "models/keep.sql", "SELECT 1")
	writeFile(t, dir, "legacy/old.sql", "SELECT 1")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"legacy/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestDiscover_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "only.sql", "SELECT 1")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"only.sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope.sql"},
	})
	assert.Error(t, err)
}

func TestDiscover_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.sql", "SELECT 1")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{".", "q.sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"models/a.sql", "models/**", true},
		{"models/deep/a.sql", "models/**", true},
		{"other/a.sql", "models/**", false},
		{"a.sql", "*.sql", true},
		{"models/a.sql", "*.sql", true}, // basename match
		{"models/sub/a.sql", "**/a.sql", true},
		{"models/gen/a.sql", "models/**/a.sql", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern),
			"path=%s pattern=%s", tt.path, tt.pattern)
	}
}
