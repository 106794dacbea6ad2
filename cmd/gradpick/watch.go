package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/gradpick"
	"github.com/gogpu/gradpick/preset"
)

func newWatchCmd() *cobra.Command {
	var (
		flags    renderFlags
		interval time.Duration
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <preset>",
		Short: "Re-render a preset whenever it changes",
		Long:  "Watch a preset file and render it again after every change until interrupted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := flags.output
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if _, err := gradpick.FormatFromPath(out); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := newWatcher(out, flags, cmd.Flags().Changed("angle"), cmd.OutOrStdout())
			if f, err := preset.Load(args[0]); err == nil {
				w.update(f, nil)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Waiting for %s: %v\n", args[0], err)
			}
			return w.run(ctx, args[0], interval, debounce)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: preset name with .png)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "image width (default: preset or 512)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "image height (default: preset or 64)")
	cmd.Flags().StringVar(&flags.shape, "shape", "", "linear or radial (default: preset)")
	cmd.Flags().Float64Var(&flags.angle, "angle", 0, "linear angle in degrees")
	cmd.Flags().BoolVar(&flags.background, "checkerboard", false, "draw a transparency checkerboard under the gradient")
	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "how often pending changes are rendered")
	cmd.Flags().DurationVar(&debounce, "debounce", preset.DefaultDebounce, "quiet period after a file change")
	return cmd
}

// watcher renders the latest reloaded preset on animator ticks.
type watcher struct {
	out      string
	flags    renderFlags
	angleSet bool
	log      io.Writer

	mu      sync.Mutex
	pending *preset.File

	animator *gradpick.Animator
}

func newWatcher(out string, flags renderFlags, angleSet bool, log io.Writer) *watcher {
	w := &watcher{out: out, flags: flags, angleSet: angleSet, log: log}
	w.animator = gradpick.NewAnimator(w.tick)
	return w
}

// update is the preset.Watch callback. Invalid presets keep the last
// rendered image.
func (w *watcher) update(f preset.File, err error) {
	if err != nil {
		fmt.Fprintf(w.log, "Error: %v\n", err)
		return
	}
	w.mu.Lock()
	w.pending = &f
	w.mu.Unlock()
}

// tick renders the pending preset, if any.
func (w *watcher) tick(context.Context) error {
	w.mu.Lock()
	f := w.pending
	w.pending = nil
	w.mu.Unlock()
	if f == nil {
		return nil
	}
	if err := renderToFile(*f, w.flags, w.angleSet, w.out); err != nil {
		fmt.Fprintf(w.log, "Error: %v\n", err)
		return err
	}
	fmt.Fprintf(w.log, "Rendered %s\n", w.out)
	return nil
}

// run watches path and ticks the animator until parent is done or the
// watch fails. A cancelled parent is a normal exit.
func (w *watcher) run(parent context.Context, path string, interval, debounce time.Duration) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		err := preset.Watch(ctx, path, debounce, w.update)
		cancel()
		errc <- err
	}()

	// Render the initial preset right away.
	if _, err := w.animator.Tick(ctx); err != nil {
		gradpick.Logger().Warn("gradpick: initial render failed", "err", err)
	}
	runErr := w.animator.Run(ctx, interval)
	cancel()
	watchErr := <-errc

	switch {
	case parent.Err() != nil:
		return nil
	case !errors.Is(runErr, context.Canceled):
		return runErr
	default:
		return watchErr
	}
}
