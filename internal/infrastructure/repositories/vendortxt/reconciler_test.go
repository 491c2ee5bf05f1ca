package vendortxt_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/vendortxt"
)

// writeFile creates a file (and its parents) under root.
func writeFile(t *testing.T, root, rel string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("package x\n"), 0o644))
}

func TestFindVendorDirs(t *testing.T) {
	t.Parallel()

	t.Run("should report declared and undeclared module directories", func(t *testing.T) {
		t.Parallel()

		// given
		vendorRoot := t.TempDir()
		writeFile(t, vendorRoot, "a/b/x.go")
		writeFile(t, vendorRoot, "c/d/y.go")

		// when
		dirs, err := vendortxt.FindVendorDirs([]string{"a/b"}, vendorRoot)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a/b", "c/d"}, dirs)
	})

	t.Run("should skip known paths that do not exist on disk", func(t *testing.T) {
		t.Parallel()

		// given
		vendorRoot := t.TempDir()
		writeFile(t, vendorRoot, "a/b/x.go")

		// when
		dirs, err := vendortxt.FindVendorDirs([]string{"a/b", "gone/dep"}, vendorRoot)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a/b"}, dirs)
	})

	t.Run("should not descend into subtrees of known module paths", func(t *testing.T) {
		t.Parallel()

		// given - nested content below a declared module must not be
		// reported as an unknown directory
		vendorRoot := t.TempDir()
		writeFile(t, vendorRoot, "a/b/internal/deep/z.go")

		// when
		dirs, err := vendortxt.FindVendorDirs([]string{"a/b"}, vendorRoot)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"a/b"}, dirs)
	})

	t.Run("should stop at the first level holding a regular file", func(t *testing.T) {
		t.Parallel()

		// given - gopkg.in-style single-level module with files plus a
		// deeper unknown module
		vendorRoot := t.TempDir()
		writeFile(t, vendorRoot, "gopkg.in/yaml.v3/yaml.go")
		writeFile(t, vendorRoot, "github.com/stray/dep/dep.go")

		// when
		dirs, err := vendortxt.FindVendorDirs(nil, vendorRoot)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"github.com/stray/dep", "gopkg.in/yaml.v3"}, dirs)
	})

	t.Run("should fail on a missing vendor root", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := vendortxt.FindVendorDirs(nil, filepath.Join(t.TempDir(), "vendor"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read vendor directory")
	})
}
