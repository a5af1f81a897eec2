package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/badgeview/cmd/badgerender/internal/config"
)

type renderOpts struct {
	scene  sceneOpts
	text   string
	output string
}

func sceneFlags(cmd *cobra.Command, opts *sceneOpts, cfg config.Config) {
	*opts = sceneOpts{
		stylePath:   cfg.Style,
		scale:       cfg.Scale,
		parent:      cfg.Parent,
		parentColor: cfg.ParentColor,
		margin:      cfg.Margin,
	}
	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", opts.stylePath, "style document (YAML)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "device pixel ratio")
	cmd.Flags().StringVarP(&opts.parent, "parent", "p", opts.parent, "parent view size as WxH; empty draws the badge alone")
	cmd.Flags().StringVar(&opts.parentColor, "parent-color", opts.parentColor, "parent fill colour")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "room around the drawing for shadows, in points")
}

func newRenderCmd(cfg config.Config) *cobra.Command {
	opts := renderOpts{output: cfg.Output}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a badge to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}
	sceneFlags(cmd, &opts.scene, cfg)
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "badge text")
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output PNG file")
	return cmd
}

func runRender(ctx context.Context, w io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := newScene(opts.scene)
	if err != nil {
		return err
	}
	defer s.Close()

	s.setTextInstantly(opts.text)
	frame := s.badge.Frame()
	logger.Debug("badge laid out", "text", opts.text, "frame", frame, "hidden", s.badge.IsHidden())

	c := s.draw(s.bounds(frame))
	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := c.WritePNG(opts.output); err != nil {
		return err
	}

	prog.done("Rendered " + opts.output)
	printSuccess(w, "Rendered badge %q", opts.text)
	printFile(w, opts.output)
	return nil
}
