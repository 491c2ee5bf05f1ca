package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gomoddrift/internal/domain/commands"
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	infraRepos "github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories"
	testdoubles "github.com/rios0rios0/gomoddrift/test"
	"github.com/rios0rios0/gomoddrift/test/domain/entitybuilders"
)

func testSettings(t *testing.T) *entities.Settings {
	t.Helper()

	settings := entities.DefaultSettings()
	settings.ModuleDir = t.TempDir()
	settings.GoModCache = t.TempDir()
	return settings
}

func downloadRegistry(
	modulesBySource map[string][]entities.Module,
) *infraRepos.SourceRegistry {
	registry := infraRepos.NewSourceRegistry()
	for _, name := range []string{"download", "gomodcache", "listdeps-all", "listdeps-threedot"} {
		registry.Register(&testdoubles.StubSource{
			SourceName: name,
			ModuleList: modulesBySource[name],
		})
	}
	return registry
}

func TestCheckDownloadCommand_Execute(t *testing.T) {
	t.Parallel()

	module := entitybuilders.NewModuleBuilder().
		WithPath("github.com/foo/bar").
		WithVersion("v1.2.3").
		BuildModule()

	t.Run("should write one report per source", func(t *testing.T) {
		t.Parallel()

		// given
		registry := downloadRegistry(map[string][]entities.Module{
			"download":   {module},
			"gomodcache": {module},
		})
		reports := &testdoubles.SpyReportWriter{}
		command := commands.NewCheckDownloadCommand(registry, reports)
		out := &bytes.Buffer{}

		// when
		err := command.Execute(context.Background(), testSettings(t),
			commands.CheckDownloadOptions{Out: out})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"download.txt", "gomodcache.txt", "listdeps_all.txt", "listdeps_threedot.txt",
		}, reports.Names)
		assert.Equal(t, []string{"github.com/foo/bar@v1.2.3"}, reports.Reports["download.txt"])
	})

	t.Run("should stay silent when download and cache agree", func(t *testing.T) {
		t.Parallel()

		// given
		registry := downloadRegistry(map[string][]entities.Module{
			"download":   {module},
			"gomodcache": {module},
		})
		command := commands.NewCheckDownloadCommand(registry, &testdoubles.SpyReportWriter{})
		out := &bytes.Buffer{}

		// when
		err := command.Execute(context.Background(), testSettings(t),
			commands.CheckDownloadOptions{Out: out})

		// then
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("should print the drift between download and cache", func(t *testing.T) {
		t.Parallel()

		// given
		other := entitybuilders.NewModuleBuilder().
			WithPath("github.com/baz/qux").
			WithVersion("v2.0.0").
			BuildModule()
		registry := downloadRegistry(map[string][]entities.Module{
			"download":   {module},
			"gomodcache": {module, other},
		})
		command := commands.NewCheckDownloadCommand(registry, &testdoubles.SpyReportWriter{})
		out := &bytes.Buffer{}

		// when
		err := command.Execute(context.Background(), testSettings(t),
			commands.CheckDownloadOptions{Out: out})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "+github.com/baz/qux@v2.0.0")
		assert.Contains(t, out.String(), "--- identified")
		assert.Contains(t, out.String(), "+++ actual")
	})

	t.Run("should fail when a source fails", func(t *testing.T) {
		t.Parallel()

		// given
		registry := downloadRegistry(nil)
		registry.Register(&testdoubles.StubSource{
			SourceName: "gomodcache",
			ModulesErr: errors.New("cache walk failed"),
		})
		command := commands.NewCheckDownloadCommand(registry, &testdoubles.SpyReportWriter{})

		// when
		err := command.Execute(context.Background(), testSettings(t),
			commands.CheckDownloadOptions{Out: &bytes.Buffer{}})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source gomodcache")
	})

	t.Run("should fail when a report cannot be written", func(t *testing.T) {
		t.Parallel()

		// given
		registry := downloadRegistry(map[string][]entities.Module{"download": {module}})
		reports := &testdoubles.SpyReportWriter{WriteErr: errors.New("disk full")}
		command := commands.NewCheckDownloadCommand(registry, reports)

		// when
		err := command.Execute(context.Background(), testSettings(t),
			commands.CheckDownloadOptions{Out: &bytes.Buffer{}})

		// then
		require.ErrorContains(t, err, "disk full")
	})
}
