package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/term"
	"github.com/campusnexus/nexus/internal/view"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [files, directories or globs...]",
	Short: "Upload documents for indexing",
	Long: `Uploads files one after another, showing a progress bar for each. Arguments
may be paths, directories (searched for .pdf, .docx and .pptx files) or
doublestar patterns such as "notes/**/*.pdf" (quote them so the shell does not
expand them first).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	files, err := term.ExpandFiles(args)
	if err != nil {
		return err
	}

	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	coord, _ := rt.terminalSession(nil)
	defer coord.Close()

	failed := 0
	for _, item := range coord.HandleFiles(ctx, files) {
		if item.Status != view.UploadSuccess {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(files))
	}
	return nil
}
