package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/term"
)

var governanceCmd = &cobra.Command{
	Use:   "governance",
	Short: "Show governance stats and pending documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel(cmd, app.TabGovernance, func(ctx context.Context, c *app.Coordinator) (any, error) {
			return c.LoadGovernance(ctx)
		})
	},
}

var governanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending documents (same as governance)",
	Args:  cobra.NoArgs,
	RunE:  governanceCmd.RunE,
}

var approveCmd = &cobra.Command{
	Use:   "approve [document-id]",
	Short: "Approve a pending document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd, func(ctx context.Context, c *app.Coordinator) error {
			return c.Approve(ctx, args[0])
		})
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject [document-id]",
	Short: "Reject a pending document",
	Long:  `Rejects a pending document. Without --reason the reason is asked for interactively; a blank answer uses "Not suitable".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")
		return runReview(cmd, func(ctx context.Context, c *app.Coordinator) error {
			if cmd.Flags().Changed("reason") || !interactive() {
				return c.RejectWithReason(ctx, args[0], reason)
			}
			return c.Reject(ctx, args[0])
		})
	},
}

func init() {
	governanceCmd.Flags().Bool("json", false, "output the panel as JSON")
	governanceListCmd.Flags().Bool("json", false, "output the panel as JSON")
	rejectCmd.Flags().String("reason", "", "rejection reason")
	governanceCmd.AddCommand(governanceListCmd, approveCmd, rejectCmd)
	rootCmd.AddCommand(governanceCmd)
}

// runReview applies a mutation and prints the reloaded panel.
func runReview(cmd *cobra.Command, mutate func(context.Context, *app.Coordinator) error) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var reader term.LineReader
	if interactive() {
		reader = term.PromptReader{}
	}
	coord, surface := rt.terminalSession(reader)
	defer coord.Close()

	surface.ActivateTab(app.TabGovernance)
	return mutate(ctx, coord)
}
