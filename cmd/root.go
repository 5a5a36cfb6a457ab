package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/blueprint/cmd/show"
	"github.com/LegacyCodeHQ/blueprint/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// devCommandsFlag is set via build-time ldflags to enable development-only commands
var devCommandsFlag = ""

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Reconstruct the import and call structure of a Python codebase",
	Long: `Blueprint statically analyzes a Python source tree and reconstructs its
architecture as a directed graph: which files define which modules, which
modules import which, and which functions call which. No code is executed.

Use 'blueprint --help' to see all available commands, or
'blueprint <command> --help' for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// isDevelopmentBuild reports whether development-only commands were enabled
// at build time.
func isDevelopmentBuild(flag string) bool {
	enabled, err := strconv.ParseBool(flag)
	if err != nil {
		return false
	}
	return enabled
}

func init() {
	if isDevelopmentBuild(devCommandsFlag) {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	rootCmd.AddCommand(show.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	rootCmd.Version = version

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
