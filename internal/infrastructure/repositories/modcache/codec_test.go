package modcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gomoddrift/internal/infrastructure/repositories/modcache"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	t.Run("should keep an unescaped component verbatim", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Equal(t, "github.com/foo/bar", modcache.Unescape("github.com/foo/bar"))
	})

	t.Run("should restore a single escaped letter", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Equal(t, "github.com/Azure/azure-sdk", modcache.Unescape("github.com/!azure/azure-sdk"))
	})

	t.Run("should restore multiple escaped letters", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Equal(t, "github.com/BurntSushi/toml", modcache.Unescape("github.com/!burnt!sushi/toml"))
	})

	t.Run("should restore an escaped version suffix", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Equal(t, "v1.0.0-RC1", modcache.Unescape("v1.0.0-!r!c1"))
	})

	t.Run("should invert the escaping for all-letter components", func(t *testing.T) {
		t.Parallel()

		// given - the escaped form of "AbCd" as the cache writes it
		escaped := "!ab!cd"

		// when / then
		assert.Equal(t, "AbCd", modcache.Unescape(escaped))
	})

	t.Run("should lowercase the tail of each piece, the known limitation", func(t *testing.T) {
		t.Parallel()

		// given - an uppercase letter that was never escaped would sit
		// mid-piece; decoding flattens it instead of keeping it
		escaped := "!aBC"

		// when / then
		assert.Equal(t, "Abc", modcache.Unescape(escaped))
	})
}
