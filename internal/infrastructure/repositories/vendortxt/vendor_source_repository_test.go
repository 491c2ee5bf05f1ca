package vendortxt_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/vendortxt"
)

func writeManifest(t *testing.T, moduleDir, content string) {
	t.Helper()

	vendorDir := filepath.Join(moduleDir, "vendor")
	require.NoError(t, os.MkdirAll(vendorDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(vendorDir, vendortxt.ManifestName), []byte(content), 0o644,
	))
}

func TestVendorSourceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return the source name", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Equal(t, "vendor", vendortxt.NewSourceRepository().Name())
	})

	t.Run("should apply the configured dropUnused filter", func(t *testing.T) {
		t.Parallel()

		// given
		moduleDir := t.TempDir()
		writeManifest(t, moduleDir,
			"# github.com/used/dep v1.0.0\ngithub.com/used/dep/pkg\n# github.com/unused/dep v2.0.0\n")
		settings := entities.DefaultSettings()
		settings.ModuleDir = moduleDir

		// when
		modules, err := vendortxt.NewSourceRepository().Modules(context.Background(), settings)

		// then
		require.NoError(t, err)
		require.Len(t, modules, 1)
		assert.Equal(t, "github.com/used/dep", modules[0].Path)
	})

	t.Run("should keep unused modules when dropUnused is off", func(t *testing.T) {
		t.Parallel()

		// given
		moduleDir := t.TempDir()
		writeManifest(t, moduleDir,
			"# github.com/used/dep v1.0.0\ngithub.com/used/dep/pkg\n# github.com/unused/dep v2.0.0\n")
		settings := entities.DefaultSettings()
		settings.ModuleDir = moduleDir
		settings.DropUnused = false

		// when
		modules, err := vendortxt.NewSourceRepository().Modules(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Len(t, modules, 2)
	})

	t.Run("should fail when the manifest is missing", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.ModuleDir = t.TempDir()

		// when
		_, err := vendortxt.NewSourceRepository().Modules(context.Background(), settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read vendor manifest")
	})

	t.Run("should surface a manifest grammar violation", func(t *testing.T) {
		t.Parallel()

		// given
		moduleDir := t.TempDir()
		writeManifest(t, moduleDir, "#!/bin/sh\n")
		settings := entities.DefaultSettings()
		settings.ModuleDir = moduleDir

		// when
		_, err := vendortxt.NewSourceRepository().Modules(context.Background(), settings)

		// then
		require.Error(t, err)
		var unrecognized *vendortxt.UnrecognizedManifestLineError
		require.ErrorAs(t, err, &unrecognized)
	})
}
