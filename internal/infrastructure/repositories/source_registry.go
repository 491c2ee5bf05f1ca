package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
)

// SourceRegistry manages all registered dependency source implementations.
type SourceRegistry struct {
	sources map[string]domainRepos.SourceRepository
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[string]domainRepos.SourceRepository),
	}
}

// Register adds a source under its name.
func (r *SourceRegistry) Register(s domainRepos.SourceRepository) {
	r.sources[s.Name()] = s
}

// Get returns the source with the given name.
func (r *SourceRegistry) Get(name string) (domainRepos.SourceRepository, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source: %q (available: %v)", name, r.Names())
	}
	return source, nil
}

// Names returns the sorted list of registered source names.
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
