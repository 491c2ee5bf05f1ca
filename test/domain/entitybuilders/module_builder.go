package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ModuleBuilder helps create test modules with a fluent interface.
type ModuleBuilder struct {
	*testkit.BaseBuilder
	path    string
	version string
	replace *entities.Module
	main    bool
}

// NewModuleBuilder creates a new module builder with sensible defaults.
func NewModuleBuilder() *ModuleBuilder {
	return &ModuleBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "github.com/test/dep",
		version:     "v1.0.0",
		replace:     nil,
		main:        false,
	}
}

// WithPath sets the module path.
func (b *ModuleBuilder) WithPath(path string) *ModuleBuilder {
	b.path = path
	return b
}

// WithVersion sets the module version.
func (b *ModuleBuilder) WithVersion(version string) *ModuleBuilder {
	b.version = version
	return b
}

// WithReplace sets the replacement module.
func (b *ModuleBuilder) WithReplace(replace *entities.Module) *ModuleBuilder {
	b.replace = replace
	return b
}

// AsMain marks the module as the main module.
func (b *ModuleBuilder) AsMain() *ModuleBuilder {
	b.main = true
	b.version = ""
	return b
}

// Build creates the module (satisfies testkit.Builder interface).
func (b *ModuleBuilder) Build() interface{} {
	return b.BuildModule()
}

// BuildModule creates the module with a concrete return type.
func (b *ModuleBuilder) BuildModule() entities.Module {
	return entities.Module{
		Path:    b.path,
		Version: b.version,
		Replace: b.replace,
		Main:    b.main,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ModuleBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "github.com/test/dep"
	b.version = "v1.0.0"
	b.replace = nil
	b.main = false
	return b
}

// Clone creates a deep copy of the ModuleBuilder.
func (b *ModuleBuilder) Clone() testkit.Builder {
	var replace *entities.Module
	if b.replace != nil {
		copied := *b.replace
		replace = &copied
	}
	return &ModuleBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		version:     b.version,
		replace:     replace,
		main:        b.main,
	}
}
