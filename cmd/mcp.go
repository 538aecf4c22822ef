package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/campusnexus/nexus/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing document Q&A, analytics, knowledge graph and governance tools to AI agents.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "nexus MCP server started on stdio (backend=%s)\n", rt.client.BaseURL())

		srv := mcpserver.NewServer(rt.client, mcpserver.Options{
			Language: rt.cfg.Language,
			TopK:     rt.cfg.TopK,
			Location: time.Local,
		}, rt.logger)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
