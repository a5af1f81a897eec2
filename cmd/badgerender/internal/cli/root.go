package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-drift/badgeview/cmd/badgerender/internal/config"
	"github.com/go-drift/badgeview/pkg/errors"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute loads the environment config and runs the CLI.
func Execute(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return newRootCmd(cfg, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Flag defaults come from cfg.
func newRootCmd(cfg config.Config, stdout, stderr io.Writer) *cobra.Command {
	verbose := cfg.Verbose
	var prevHandler errors.ErrorHandler

	root := &cobra.Command{
		Use:           "badgerender",
		Short:         "Render notification badges to PNG",
		Long:          `badgerender lays out a notification badge, composites its layers and rasterizes them, either as a single image or as the frames of an animated text change.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(stderr, level)
			prevHandler = errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			errors.SetHandler(prevHandler)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("badgerender %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "enable verbose logging")

	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newAnimateCmd(cfg))
	root.AddCommand(newInspectCmd(cfg))
	return root
}
