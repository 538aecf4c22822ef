package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	langFlag string
	urlFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Terminal, web and MCP client for the CampusNexus document assistant",
	Long: `Nexus talks to a CampusNexus backend: ask questions about uploaded course
documents, upload PDFs, DOCX and PPTX files, browse previous-year-question
analytics and the knowledge graph, and review pending documents. It runs as
an interactive terminal session, a web dashboard or an MCP server.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".nexus.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "interface language (en, hi, mr, es, fr, de)")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "backend base URL (overrides base_url)")
}
