package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/decker502/neuralfx/internal/ui"
	"github.com/decker502/neuralfx/pkg/app"
	"github.com/decker502/neuralfx/pkg/host"
	"github.com/decker502/neuralfx/pkg/simulation"
	"github.com/decker502/neuralfx/pkg/systems"
	"github.com/decker502/neuralfx/pkg/terminal"
)

func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func runWindow(opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if err := app.Run(app.Options{Config: cfg, Seed: opts.seed}); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func windowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run the effects in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts)
		},
	}
}

func termCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the effects in the terminal (Esc or q to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			prefs := host.ReadPreferences(cfg.Motion.ReducedMotion)
			return terminal.Run(ctx, cfg, seedOrNow(opts.seed), prefs)
		},
	}
}

func simulateCmd(opts *rootOptions) *cobra.Command {
	simOpts := simulation.DefaultOptions()
	var noSweep bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the effects headless on a virtual clock and print statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if simOpts.Duration <= 0 {
				return fmt.Errorf("duration must be > 0, got %v", simOpts.Duration)
			}

			simOpts.Seed = opts.seed
			if simOpts.Seed == 0 {
				simOpts.Seed = 1
			}
			simOpts.Sweep = !noSweep

			prefs := host.ReadPreferences(cfg.Motion.ReducedMotion)
			report := simulation.Run(cfg, prefs, simOpts)
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&simOpts.Duration, "duration", "d", simOpts.Duration, "Virtual duration to simulate")
	cmd.Flags().DurationVar(&simOpts.Step, "step", simOpts.Step, "Virtual time per step")
	cmd.Flags().DurationVar(&simOpts.Sample, "sample", simOpts.Sample, "Statistics sample interval")
	cmd.Flags().DurationVar(&simOpts.ResizeAt, "resize-at", 0, "Halve the viewport at this virtual time (0 = never)")
	cmd.Flags().DurationVar(&simOpts.HeroGap, "hero-gap", 0, "Detach the hero surface at startup and reattach it at this virtual time (0 = never)")
	cmd.Flags().BoolVar(&noSweep, "no-sweep", false, "Do not sweep the pointer across the viewport")
	return cmd
}

func printReport(cmd *cobra.Command, report simulation.Report) {
	out := cmd.OutOrStdout()
	ui.Banner(out, fmt.Sprintf("simulation (seed %d)", report.Seed))

	if report.ReducedMotion {
		ui.Warn.Fprintln(out, "  Reduced motion preferred, no effects were started")
		return
	}

	rows := make([][]string, 0, len(report.Samples))
	for _, s := range report.Samples {
		rows = append(rows, []string{
			s.Time.Round(time.Millisecond).String(),
			strconv.Itoa(s.Network.Nodes),
			strconv.Itoa(s.Network.Connections),
			strconv.Itoa(s.Network.Particles),
			strconv.Itoa(s.Network.ActiveNodes),
			strconv.Itoa(s.Network.HighlightedNodes),
			strconv.Itoa(s.Network.Rebuilds),
			s.DriftState.String(),
			strconv.Itoa(s.DriftParticles),
			strconv.FormatFloat(s.MaxOffset, 'f', 2, 64),
		})
	}
	ui.Table(out, []string{"time", "nodes", "links", "flow", "active", "near", "rebuilds", "drift", "drifting", "parallax"}, rows)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Callbacks fired:   %d\n", report.Callbacks)
	fmt.Fprintf(out, "  Drift attempts:    %d\n", report.DriftAttempts)
	if report.Final().DriftState == systems.DriftReady {
		ui.Good.Fprintln(out, "  Drift field ready")
	} else {
		ui.Warn.Fprintln(out, "  Drift field not ready")
	}
}

func configCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
