// Package testdoubles provides hand-crafted test doubles (spies, stubs,
// dummies) for the domain interfaces.
package testdoubles

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/gomoddrift/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gomoddrift/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// SpyGoTool
// ---------------------------------------------------------------------------

// SpyGoTool implements the go tool repository as a configurable spy.
// Map the joined argument string of each expected invocation to the stdout
// it should produce, then inspect Calls to verify behavior.
type SpyGoTool struct {
	// Outputs maps "mod download -json"-style argument strings to stdout.
	Outputs map[string]string
	// RunErr, when set, fails every invocation.
	RunErr error
	// spy: argument strings received, in order
	Calls []string
}

var _ domainRepos.GoToolRepository = (*SpyGoTool)(nil)

func (t *SpyGoTool) Run(
	_ context.Context,
	_ *entities.Settings,
	args ...string,
) (string, error) {
	call := strings.Join(args, " ")
	t.Calls = append(t.Calls, call)

	if t.RunErr != nil {
		return "", t.RunErr
	}
	if t.Outputs != nil {
		if output, ok := t.Outputs[call]; ok {
			return output, nil
		}
	}
	return "", fmt.Errorf("unexpected go invocation: %s", call)
}

// ---------------------------------------------------------------------------
// SpyReportWriter
// ---------------------------------------------------------------------------

// SpyReportWriter implements the report repository by capturing every
// written report in memory.
type SpyReportWriter struct {
	// WriteErr, when set, fails every write.
	WriteErr error
	// spy: report name -> lines written
	Reports map[string][]string
	// spy: names in write order
	Names []string
}

var _ domainRepos.ReportRepository = (*SpyReportWriter)(nil)

func (w *SpyReportWriter) Write(
	_ *entities.Settings,
	name string,
	lines []string,
) error {
	if w.WriteErr != nil {
		return w.WriteErr
	}
	if w.Reports == nil {
		w.Reports = make(map[string][]string)
	}
	w.Reports[name] = lines
	w.Names = append(w.Names, name)
	return nil
}

// ---------------------------------------------------------------------------
// StubSource
// ---------------------------------------------------------------------------

// StubSource implements a source repository with fixed module records.
type StubSource struct {
	SourceName string
	ModuleList []entities.Module
	ModulesErr error
}

var _ domainRepos.SourceRepository = (*StubSource)(nil)

func (s *StubSource) Name() string { return s.SourceName }

func (s *StubSource) Modules(
	_ context.Context,
	_ *entities.Settings,
) ([]entities.Module, error) {
	return s.ModuleList, s.ModulesErr
}
