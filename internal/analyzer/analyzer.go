// Package analyzer finds Crow route declarations in C++ source text and
// extracts the Doxygen documentation written above each of them.
//
// The input is treated as opaque text. Routes are located with a fixed
// pattern and each one is paired with the nearest /** ... */ block that
// precedes it.
package analyzer

import (
	"fmt"
	"log/slog"
	"os"
)

type Analyzer struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze scans a single source text. The source name is only used for
// diagnostics.
func (a *Analyzer) Analyze(source, content string) *Analysis {
	analysis := &Analysis{
		Routes: []Route{},
	}
	a.parseRoutes(source, content, analysis)
	return analysis
}

// AnalyzeFiles reads and scans every file in order. Routes from later files
// come after routes from earlier ones. Any read failure aborts the run.
func (a *Analyzer) AnalyzeFiles(paths ...string) (*Analysis, error) {
	analysis := &Analysis{
		Routes: []Route{},
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
		}
		a.parseRoutes(path, string(data), analysis)
	}

	a.logger.Info("analysis complete",
		"files", len(paths),
		"routes", len(analysis.Routes),
		"diagnostics", len(analysis.Diagnostics),
	)

	return analysis, nil
}
