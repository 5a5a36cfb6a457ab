package show

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/blueprint/analysis"
	"github.com/LegacyCodeHQ/blueprint/cmd/show/formatters"
	"github.com/LegacyCodeHQ/blueprint/internal/mcplogdlog"
)

type showOptions struct {
	rootDir      string
	outputFormat string
	outputPath   string
	ignores      []string
	strict       bool
}

// Cmd represents the show command.
var Cmd = NewCommand()

// NewCommand returns a new show command instance.
func NewCommand() *cobra.Command {
	opts := &showOptions{
		outputFormat: formatters.OutputFormatHTML.String(),
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the import and call graph of a Python package",
		Long: `Analyze a Python package root and render its import and call graph.

The graph contains file, module and function nodes. External modules are
invisible except for well-known ones on the ignore list, which are pruned
outright.

Examples:
  blueprint show                          # analyze the current directory, write HTML next to it
  blueprint show -r ./app -f dot          # DOT on stdout
  blueprint show -r ./app -f json -o g.json
  blueprint show --ignore requests,flask  # extend the ignore list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rootDir, "root", "r", ".", "Python package root directory")
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f",
		opts.outputFormat, fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "",
		"Output file (html defaults to <root>/blueprint_graph.html, other formats to stdout)")
	cmd.Flags().StringSliceVar(&opts.ignores, "ignore", nil,
		"Additional module names to prune from the graph (comma-separated)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false,
		"Abort the run on the first file that fails to parse")

	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions) error {
	formatter, err := formatters.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	cfg, err := analysis.NewConfig(opts.rootDir, opts.ignores)
	if err != nil {
		return err
	}
	cfg.SkipParseErrors = !opts.strict

	slog.Info("scanning package", "package", cfg.RootPackage, "root", cfg.Root)

	graph, err := analysis.Run(cfg)
	if err != nil {
		return err
	}

	snapshot, err := graph.Snapshot()
	if err != nil {
		return err
	}

	slog.Info("graph built", "nodes", len(snapshot.Nodes), "edges", len(snapshot.Edges))
	mcplogdlog.Debug("graph built", map[string]any{
		"package": cfg.RootPackage,
		"nodes":   len(snapshot.Nodes),
		"edges":   len(snapshot.Edges),
	})

	output, err := formatter.Format(snapshot, formatters.FormatOptions{Label: cfg.RootPackage})
	if err != nil {
		return err
	}

	return writeOutput(cmd, opts, cfg.Root, output)
}

func writeOutput(cmd *cobra.Command, opts *showOptions, root, output string) error {
	outputPath := opts.outputPath

	// HTML is only useful as a file; everything else defaults to stdout.
	if outputPath == "" && opts.outputFormat == formatters.OutputFormatHTML.String() {
		outputPath = filepath.Join(root, "blueprint_graph.html")
	}

	if outputPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, "blueprint_graph.html")
	}

	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved graph to %s\n", outputPath)
	return nil
}
