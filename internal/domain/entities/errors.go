package entities

import "fmt"

// UnversionedModuleError reports a module whose identity resolved to an
// empty version. It carries the offending module for diagnosis.
type UnversionedModuleError struct {
	Module Module
}

func (e *UnversionedModuleError) Error() string {
	if e.Module.Replace != nil {
		return fmt.Sprintf(
			"versionless module: %s %s (replaced by %s %s)",
			e.Module.Path, e.Module.Version,
			e.Module.Replace.Path, e.Module.Replace.Version,
		)
	}
	return fmt.Sprintf("versionless module: %s %s", e.Module.Path, e.Module.Version)
}
