package vendortxt

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
)

const (
	headerPrefix   = "# "
	commentPrefix  = "#"
	explicitMarker = "## explicit"
	replaceToken   = "=>"
)

// UnrecognizedManifestLineError reports a manifest line that matches none
// of the known header shapes or the explicit marker.
type UnrecognizedManifestLineError struct {
	Line string
}

func (e *UnrecognizedManifestLineError) Error() string {
	return fmt.Sprintf("unrecognized line in modules.txt: %s", e.Line)
}

// NoPrecedingModuleError reports a package line appearing before any
// module header.
type NoPrecedingModuleError struct {
	Line string
}

func (e *NoPrecedingModuleError) Error() string {
	return fmt.Sprintf("no module line found above %q", e.Line)
}

// ManifestEntry is one parsed module header plus whether at least one
// package line followed it before the next header.
type ManifestEntry struct {
	Module      entities.Module
	HasPackages bool
}

// ParseManifest scans the vendor manifest line by line. Lines starting
// with "# " are module headers; "## explicit" markers are ignored; any
// other "#"-line is rejected; every remaining line is a package line that
// marks the most recent header as owning packages.
func ParseManifest(text string) ([]ManifestEntry, error) {
	var entries []ManifestEntry

	for _, line := range splitLines(text) {
		switch {
		case strings.HasPrefix(line, headerPrefix):
			module, err := parseModuleLine(line)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ManifestEntry{Module: module})

		case !strings.HasPrefix(line, commentPrefix):
			if len(entries) == 0 {
				return nil, &NoPrecedingModuleError{Line: line}
			}
			entries[len(entries)-1].HasPackages = true

		case !strings.HasPrefix(line, explicitMarker):
			return nil, &UnrecognizedManifestLineError{Line: line}
		}
	}

	return entries, nil
}

// FilterModules applies the manifest post-processing: main modules and
// wildcard replacements are always excluded; headers without packages are
// excluded when dropUnused is set.
func FilterModules(entries []ManifestEntry, dropUnused bool) []entities.Module {
	var modules []entities.Module
	for _, entry := range entries {
		if entry.Module.Main || isWildcardReplacement(entry.Module) {
			continue
		}
		if dropUnused && !entry.HasPackages {
			continue
		}
		modules = append(modules, entry.Module)
	}
	return modules
}

// parseModuleLine parses the six header shapes:
//
//	name
//	name version
//	name => path
//	name version => path
//	name => newname newversion
//	name version => newname newversion
func parseModuleLine(line string) (entities.Module, error) {
	fields := strings.Fields(strings.TrimPrefix(line, headerPrefix))

	switch {
	case len(fields) == 1:
		return entities.Module{Path: fields[0], Main: true}, nil

	case len(fields) == 2: //nolint:mnd // name version
		return entities.Module{Path: fields[0], Version: fields[1]}, nil

	case len(fields) == 3 && fields[1] == replaceToken:
		return entities.Module{
			Path:    fields[0],
			Replace: &entities.Module{Path: fields[2]},
		}, nil

	case len(fields) == 4 && fields[2] == replaceToken:
		return entities.Module{
			Path:    fields[0],
			Version: fields[1],
			Replace: &entities.Module{Path: fields[3]},
		}, nil

	case len(fields) == 4 && fields[1] == replaceToken:
		return entities.Module{
			Path:    fields[0],
			Replace: &entities.Module{Path: fields[2], Version: fields[3]},
		}, nil

	case len(fields) == 5 && fields[2] == replaceToken:
		return entities.Module{
			Path:    fields[0],
			Version: fields[1],
			Replace: &entities.Module{Path: fields[3], Version: fields[4]},
		}, nil

	default:
		return entities.Module{}, &UnrecognizedManifestLineError{Line: line}
	}
}

// isWildcardReplacement reports a header that redirects a module without
// pinning the module's own version. Such entries describe a replace
// directive, not a used dependency.
func isWildcardReplacement(module entities.Module) bool {
	return module.Replace != nil && module.Version == ""
}

// splitLines splits on newlines without producing a trailing empty line
// for text ending in a newline. Interior blank lines are kept; the grammar
// treats them as package lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
