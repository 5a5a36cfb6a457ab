package watch

import (
	"github.com/LegacyCodeHQ/blueprint/analysis"
	"github.com/LegacyCodeHQ/blueprint/cmd/show/formatters"
)

// buildGraphJSON runs the analysis pipeline over the watched root and
// formats the result as the JSON payload the viewer consumes.
func buildGraphJSON(opts *watchOptions) (string, error) {
	cfg, err := analysis.NewConfig(opts.rootDir, opts.ignores)
	if err != nil {
		return "", err
	}
	// A half-saved file must not kill the watch loop.
	cfg.SkipParseErrors = true

	graph, err := analysis.Run(cfg)
	if err != nil {
		return "", err
	}

	snapshot, err := graph.Snapshot()
	if err != nil {
		return "", err
	}

	formatter := &formatters.JSONFormatter{}
	return formatter.Format(snapshot, formatters.FormatOptions{Label: cfg.RootPackage})
}
