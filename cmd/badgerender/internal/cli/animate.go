package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/badgeview/cmd/badgerender/internal/config"
	"github.com/go-drift/badgeview/pkg/animation"
)

type animateOpts struct {
	scene  sceneOpts
	from   string
	to     string
	frames int
	output string
}

func newAnimateCmd(cfg config.Config) *cobra.Command {
	opts := animateOpts{frames: cfg.Frames, output: "frames"}

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render the frames of a text change",
		Long:  `animate sets the badge text to --from, changes it to --to and writes one PNG per frame, evenly spaced over the animation duration.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.frames < 2 {
				return fmt.Errorf("frames must be at least 2, got %d", opts.frames)
			}
			return runAnimate(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}
	sceneFlags(cmd, &opts.scene, cfg)
	cmd.Flags().StringVar(&opts.from, "from", "", "starting text")
	cmd.Flags().StringVar(&opts.to, "to", "", "final text")
	cmd.Flags().IntVarP(&opts.frames, "frames", "n", opts.frames, "number of frames, first and last included")
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output directory")
	return cmd
}

// frameClock is an animation.Clock moved by hand between frames.
type frameClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *frameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *frameClock) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func runAnimate(ctx context.Context, w io.Writer, opts *animateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	start := time.Unix(0, 0)
	clk := &frameClock{now: start}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	s, err := newScene(opts.scene)
	if err != nil {
		return err
	}
	defer s.Close()

	s.setTextInstantly(opts.from)
	before := s.badge.Frame()
	s.badge.SetText(opts.to)
	after := s.badge.Frame()
	bounds := s.bounds(before, after)

	duration := s.badge.AnimationDuration()
	if !s.badge.AnimateChanges() {
		duration = 0
	}
	logger.Debug("animating", "from", opts.from, "to", opts.to, "duration", duration, "frames", opts.frames)

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	last := opts.frames - 1
	for i := range opts.frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			clk.set(start.Add(duration * time.Duration(i) / time.Duration(last)))
			animation.StepTickers()
		}
		path := filepath.Join(opts.output, fmt.Sprintf("frame_%03d.png", i))
		if err := s.draw(bounds).WritePNG(path); err != nil {
			return err
		}
		logger.Debug("frame", "index", i, "animating", s.comp.IsAnimating())
	}

	prog.done(fmt.Sprintf("Rendered %d frames", opts.frames))
	printSuccess(w, "Animated %q %s %q over %s", opts.from, iconArrow, opts.to, duration)
	printFile(w, opts.output)
	return nil
}
