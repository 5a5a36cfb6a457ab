package watch

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type watchOptions struct {
	rootDir string
	port    int
	ignores []string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{
		port: 4900,
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a Python package and serve a live import and call graph",
		Long:  `Watch a Python package root for file changes, rebuild the import and call graph, and serve a live-updating visualization at localhost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.rootDir, "root", "r", ".", "Python package root directory")
	cmd.Flags().IntVarP(&opts.port, "port", "P", opts.port, "HTTP server port")
	cmd.Flags().StringSliceVar(&opts.ignores, "ignore", nil, "Additional module names to prune from the graph (comma-separated)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	b := newBroker()
	srv := newServer(b, opts.port)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", opts.port, err)
	}

	go srv.Serve(ln)

	payload, err := buildGraphJSON(opts)
	if err != nil {
		return fmt.Errorf("initial graph build failed: %w", err)
	}
	b.publish(payload)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", opts.rootDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving at http://localhost:%d\n", opts.port)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	err = watchAndRebuild(ctx, opts, b)

	srv.Close()
	return err
}
