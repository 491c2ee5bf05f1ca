package entities

// Module represents a Go module as reported by the -json output of
// `go mod download` and `go list`, or by a vendor/modules.txt header.
// Replace points to at most one replacement module; observed data never
// nests replacements deeper than one level.
type Module struct {
	Path    string  `json:"Path"`
	Version string  `json:"Version,omitempty"`
	Replace *Module `json:"Replace,omitempty"`
	Main    bool    `json:"Main,omitempty"`
}

// Package represents a Go package as reported by `go list -deps -json`.
// Multiple packages may carry the same module by value.
type Package struct {
	ImportPath string   `json:"ImportPath"`
	Module     *Module  `json:"Module,omitempty"`
	Standard   bool     `json:"Standard,omitempty"`
	Deps       []string `json:"Deps,omitempty"`
}
