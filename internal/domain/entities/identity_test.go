package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	"github.com/rios0rios0/gomoddrift/test/domain/entitybuilders"
)

func TestIdentityFromModule(t *testing.T) {
	t.Parallel()

	t.Run("should use the module's own coordinates without a replacement", func(t *testing.T) {
		t.Parallel()

		// given
		module := entitybuilders.NewModuleBuilder().
			WithPath("github.com/foo/bar").
			WithVersion("v1.2.3").
			BuildModule()

		// when
		identity, err := entities.IdentityFromModule(module)

		// then
		require.NoError(t, err)
		assert.Equal(t, "github.com/foo/bar", identity.Name)
		assert.Equal(t, "v1.2.3", identity.Version)
		assert.False(t, identity.Local)
		assert.Equal(t, "github.com/foo/bar@v1.2.3", identity.String())
	})

	t.Run("should let a versioned replacement fully supersede the original", func(t *testing.T) {
		t.Parallel()

		// given
		module := entitybuilders.NewModuleBuilder().
			WithPath("github.com/foo/bar").
			WithVersion("v1.2.3").
			WithReplace(&entities.Module{Path: "github.com/fork/bar", Version: "v9.9.9"}).
			BuildModule()

		// when
		identity, err := entities.IdentityFromModule(module)

		// then
		require.NoError(t, err)
		assert.Equal(t, "github.com/fork/bar", identity.Name)
		assert.Equal(t, "v9.9.9", identity.Version)
		assert.False(t, identity.Local)
	})

	t.Run("should keep the replacement path as version for a local replacement", func(t *testing.T) {
		t.Parallel()

		// given
		module := entitybuilders.NewModuleBuilder().
			WithPath("github.com/foo/bar").
			WithVersion("v1.2.3").
			WithReplace(&entities.Module{Path: "../bar"}).
			BuildModule()

		// when
		identity, err := entities.IdentityFromModule(module)

		// then
		require.NoError(t, err)
		assert.Equal(t, "github.com/foo/bar", identity.Name)
		assert.Equal(t, "../bar", identity.Version)
		assert.True(t, identity.Local)
	})

	t.Run("should fail when resolution produces an empty version", func(t *testing.T) {
		t.Parallel()

		// given
		module := entitybuilders.NewModuleBuilder().
			WithPath("github.com/foo/bar").
			WithVersion("").
			BuildModule()

		// when
		_, err := entities.IdentityFromModule(module)

		// then
		require.Error(t, err)
		var unversioned *entities.UnversionedModuleError
		require.ErrorAs(t, err, &unversioned)
		assert.Equal(t, "github.com/foo/bar", unversioned.Module.Path)
	})
}

func TestCollectIdentities(t *testing.T) {
	t.Parallel()

	t.Run("should exclude the main module, deduplicate, and sort", func(t *testing.T) {
		t.Parallel()

		// given
		modules := []entities.Module{
			entitybuilders.NewModuleBuilder().WithPath("github.com/zzz/last").WithVersion("v1.0.0").BuildModule(),
			entitybuilders.NewModuleBuilder().WithPath("github.com/aaa/first").WithVersion("v2.0.0").BuildModule(),
			entitybuilders.NewModuleBuilder().WithPath("github.com/aaa/first").WithVersion("v2.0.0").BuildModule(),
			entitybuilders.NewModuleBuilder().WithPath("github.com/me/mine").AsMain().BuildModule(),
		}

		// when
		identities, err := entities.CollectIdentities(modules)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"github.com/aaa/first@v2.0.0",
			"github.com/zzz/last@v1.0.0",
		}, entities.IdentityLines(identities))
	})

	t.Run("should order identities with the same name by version", func(t *testing.T) {
		t.Parallel()

		// given
		modules := []entities.Module{
			{Path: "github.com/foo/bar", Version: "v1.10.0"},
			{Path: "github.com/foo/bar", Version: "v1.2.0"},
		}

		// when
		identities, err := entities.CollectIdentities(modules)

		// then
		require.NoError(t, err)
		// lexicographic on the version string, not semver
		assert.Equal(t, []string{
			"github.com/foo/bar@v1.10.0",
			"github.com/foo/bar@v1.2.0",
		}, entities.IdentityLines(identities))
	})

	t.Run("should fail the whole collection on one versionless module", func(t *testing.T) {
		t.Parallel()

		// given
		modules := []entities.Module{
			{Path: "github.com/foo/bar", Version: "v1.0.0"},
			{Path: "github.com/broken/dep"},
		}

		// when
		_, err := entities.CollectIdentities(modules)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "versionless module")
	})
}
