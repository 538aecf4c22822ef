package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/app"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show previous-year-question analytics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel(cmd, app.TabAnalytics, func(ctx context.Context, c *app.Coordinator) (any, error) {
			return c.LoadAnalytics(ctx)
		})
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Show the knowledge graph",
	Long:  `Prints every concept relation as source → relationship → target with graph statistics. With --watch the graph is reloaded on an interval until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel(cmd, app.TabGraph, func(ctx context.Context, c *app.Coordinator) (any, error) {
			return c.LoadGraph(ctx)
		})
	},
}

func init() {
	analyticsCmd.Flags().Bool("json", false, "output the panel as JSON")
	graphCmd.Flags().Bool("json", false, "output the panel as JSON")
	graphCmd.Flags().Duration("watch", 0, "reload the graph on this interval")
	rootCmd.AddCommand(analyticsCmd, graphCmd)
}

type panelLoader func(ctx context.Context, c *app.Coordinator) (any, error)

func runPanel(cmd *cobra.Command, tab app.Tab, load panelLoader) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	var watch time.Duration
	if cmd.Flags().Lookup("watch") != nil {
		watch, _ = cmd.Flags().GetDuration("watch")
	}

	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	coord, surface := rt.terminalSession(nil)
	defer coord.Close()

	// The surface starts on the chat tab, so JSON mode renders nothing.
	show := func() error {
		if jsonOutput {
			v, err := load(ctx, coord)
			if err != nil {
				return err
			}
			return printJSON(v)
		}
		surface.ActivateTab(tab)
		_, err := load(ctx, coord)
		return err
	}

	if err := show(); err != nil || watch <= 0 {
		return err
	}

	ticker := time.NewTicker(watch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := show(); err != nil {
				rt.logger.Sugar().Warnf("reload failed: %v", err)
			}
		}
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
