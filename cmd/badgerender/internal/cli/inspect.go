package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/badgeview/cmd/badgerender/internal/config"
	"github.com/go-drift/badgeview/pkg/badge"
	"github.com/go-drift/badgeview/pkg/graphics"
	"github.com/go-drift/badgeview/pkg/style"
)

type inspectOpts struct {
	scene sceneOpts
	text  string
	yaml  bool
}

func newInspectCmd(cfg config.Config) *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the computed geometry and layer stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), &opts)
		},
	}
	sceneFlags(cmd, &opts.scene, cfg)
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "badge text")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "print the effective style document instead")
	return cmd
}

func runInspect(w io.Writer, opts *inspectOpts) error {
	s, err := newScene(opts.scene)
	if err != nil {
		return err
	}
	defer s.Close()
	s.setTextInstantly(opts.text)

	if opts.yaml {
		data, err := style.Marshal(style.FromBadge(s.badge))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	g := s.badge.Geometry()
	printTitle(w, fmt.Sprintf("badge %q", opts.text))
	printKeyValue(w, "frame", formatRect(g.Frame))
	printKeyValue(w, "text frame", formatRect(g.TextFrame))
	radius := fmt.Sprintf("%.2f", g.CornerRadius)
	if s.badge.IsCornerRadiusAuto() {
		radius += " (auto)"
	}
	printKeyValue(w, "radius", radius)
	printKeyValue(w, "content", fmt.Sprintf("%.2f", g.ContentWidth))
	printKeyValue(w, "line height", fmt.Sprintf("%.2f", g.LineHeight))
	printKeyValue(w, "scale", fmt.Sprintf("%g", s.badge.Scale()))
	printKeyValue(w, "displayed", fmt.Sprintf("%q", s.badge.DisplayedText()))
	printKeyValue(w, "hidden", fmt.Sprintf("%t", s.badge.IsHidden()))

	commit := s.badge.Snapshot()
	names := make([]string, 0, len(commit.Layers))
	for _, l := range commit.Layers {
		names = append(names, string(l.Name))
	}
	printKeyValue(w, "layers", joinDim(names))
	for _, l := range commit.Layers {
		printKeyValue(w, "  "+string(l.Name), describeLayer(l))
	}
	return nil
}

func describeLayer(l badge.Layer) string {
	var parts []string
	switch {
	case l.Gradient != nil:
		parts = append(parts, "gradient")
	case l.Fill.Alpha() > 0:
		parts = append(parts, "fill "+l.Fill.Hex())
	}
	if l.LineWidth > 0 {
		parts = append(parts, fmt.Sprintf("stroke %s %.2f", l.Stroke.Hex(), l.LineWidth))
	}
	if l.Name == badge.LayerText {
		parts = append(parts, fmt.Sprintf("%q %s %g", l.Text, l.Font.Family, l.Font.Size))
	}
	if l.Shadow != nil {
		parts = append(parts, "shadow")
	}
	if len(parts) == 0 {
		return "empty"
	}
	return joinDim(parts)
}

func formatRect(r graphics.Rect) string {
	return fmt.Sprintf("x=%.2f y=%.2f w=%.2f h=%.2f", r.Left, r.Top, r.Width(), r.Height())
}
