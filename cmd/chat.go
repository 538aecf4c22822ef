package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/term"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session",
	Long: `Starts an interactive session. Plain text asks a question about your documents;
slash commands switch panels, change language, upload files and review pending
documents. Type /help for the list.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reader := lineReader()
	coord, surface := rt.terminalSession(reader)
	defer coord.Close()

	coord.Start()
	surface.Welcome()

	go app.NewHealthMonitor(coord, rt.cfg.HealthInterval).Run(ctx)

	return term.NewREPL(coord, reader, os.Stdout).Run(ctx)
}
