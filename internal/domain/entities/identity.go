package entities

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Identity is the canonical (name, version) pair denoting one resolved
// dependency. Identities are comparable, so they can be deduplicated
// through a map, and are ordered lexicographically by name then version.
type Identity struct {
	Name    string
	Version string
	// Local marks a versionless (filesystem-style) replacement: Version
	// then holds the replacement path, not a real version number.
	Local bool
}

// String renders the identity in the canonical name@version report format.
func (id Identity) String() string {
	return fmt.Sprintf("%s@%s", id.Name, id.Version)
}

// Less orders identities lexicographically by name, then version.
func (id Identity) Less(other Identity) bool {
	if id.Name != other.Name {
		return id.Name < other.Name
	}
	return id.Version < other.Version
}

// IdentityFromModule resolves a module (and its optional replacement) into
// a single canonical identity:
//
//   - no replacement: (path, version)
//   - versioned replacement: the replacement fully supersedes the original
//   - versionless replacement: (path, replacement path); the replacement
//     path is kept in the version field so the identity stays unique and
//     readable, and the Local flag records the overload
//
// An empty resulting version fails with UnversionedModuleError.
func IdentityFromModule(module Module) (Identity, error) {
	var id Identity
	switch {
	case module.Replace == nil:
		id = Identity{Name: module.Path, Version: module.Version}
	case module.Replace.Version != "":
		id = Identity{Name: module.Replace.Path, Version: module.Replace.Version}
	default:
		id = Identity{Name: module.Path, Version: module.Replace.Path, Local: true}
	}

	if id.Version == "" {
		return Identity{}, &UnversionedModuleError{Module: module}
	}
	return id, nil
}

// CollectIdentities resolves every non-main module into its identity,
// deduplicates, and returns the sorted result.
func CollectIdentities(modules []Module) ([]Identity, error) {
	set := make(map[Identity]struct{}, len(modules))
	for _, module := range modules {
		if module.Main {
			continue
		}
		id, err := IdentityFromModule(module)
		if err != nil {
			return nil, err
		}
		set[id] = struct{}{}
	}
	return sortIdentities(lo.Keys(set)), nil
}

// IdentityLines renders identities one per line, in the given order.
func IdentityLines(identities []Identity) []string {
	return lo.Map(identities, func(id Identity, _ int) string {
		return id.String()
	})
}

func sortIdentities(identities []Identity) []Identity {
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Less(identities[j])
	})
	return identities
}
