package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/view"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the backend is reachable",
	Long:  `Probes the backend once and prints Connected, Degraded or Offline with the LLM and vector store component status. Exits non-zero when offline.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.close()

		coord, _ := rt.terminalSession(nil)
		defer coord.Close()

		// The surface prints the indicator line.
		v := coord.CheckHealth(context.Background())
		if v.State == view.HealthOffline {
			return fmt.Errorf("backend is offline at %s", rt.client.BaseURL())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
