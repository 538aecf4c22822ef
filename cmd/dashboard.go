package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/campusnexus/nexus/internal/dashboard"
	"github.com/campusnexus/nexus/internal/server"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the web dashboard",
	Long:  `Starts the browser dashboard. Each open tab gets its own session that survives a page reload.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.close()

		port, _ := cmd.Flags().GetInt("port")
		if !cmd.Flags().Changed("port") {
			port = rt.cfg.DashboardPort
		}
		allowAll, _ := cmd.Flags().GetBool("cors-allow-all")

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: allowAll || rt.cfg.DashboardAllowAll,
		}, rt.logger)

		dash := dashboard.New(rt.client, dashboard.Options{
			Session:        rt.sessionOptions(),
			HealthInterval: rt.cfg.HealthInterval,
		}, rt.logger)
		defer dash.Close()
		dash.RegisterRoutes(srv.Router())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(os.Stderr, "nexus dashboard on http://localhost:%d (backend %s)\n", port, rt.client.BaseURL())
		return srv.Start(ctx)
	},
}

func init() {
	dashboardCmd.Flags().Int("port", 8090, "port to listen on (default from config)")
	dashboardCmd.Flags().Bool("cors-allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(dashboardCmd)
}
