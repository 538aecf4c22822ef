package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/api"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question about your documents",
	Long:  `Sends one question to the backend and prints the answer with its confidence and sources.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Bool("json", false, "print the raw backend response as JSON")
	askCmd.Flags().Int("top-k", 0, "number of chunks to retrieve (default from config)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("question is empty")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	topK, _ := cmd.Flags().GetInt("top-k")

	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()
	if topK > 0 {
		rt.cfg.TopK = topK
	}

	if jsonOutput {
		resp, err := rt.client.Chat(ctx, api.ChatRequest{
			Query:          question,
			Language:       rt.cfg.Language,
			TopK:           rt.cfg.TopK,
			IncludeSources: true,
		})
		if err != nil {
			return fmt.Errorf("chat request failed: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	coord, _ := rt.terminalSession(nil)
	defer coord.Close()

	coord.SendMessage(ctx, question)
	msgs := coord.Messages()
	if len(msgs) > 0 && msgs[len(msgs)-1].Fallback {
		return errors.New("chat request failed (see log for details)")
	}
	return nil
}
