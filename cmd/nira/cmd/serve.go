package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nira/internal/adapters/browser"
	"nira/internal/adapters/web"
)

var (
	serveHost   string
	servePort   int
	serveNoOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Open the blueprint in a browser editor with live reload",
	Long: `Serve a browser editor for the blueprint. Saves from the page are written
back to the file, and edits made elsewhere are pushed to every open page.

Examples:
  nira serve
  nira serve --port 8080 --no-open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverCfg := cfg.Server
		if cmd.Flags().Changed("host") {
			serverCfg.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			serverCfg.Port = servePort
		}
		if serveNoOpen {
			serverCfg.OpenBrowser = false
		}

		srv := web.NewServer(web.SettingsFromConfig(serverCfg), repo,
			web.WithJournal(journal),
			web.WithLogger(logger),
		)
		if err := srv.Load(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Start(ctx); err != nil {
			return err
		}

		url := srv.BaseURL()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Serving %s at %s (Ctrl+C to stop)\n", repo.Path(), url)
		if serverCfg.OpenBrowser {
			if err := browser.NewOpener().OpenURL(url); err != nil {
				logger.Warn("could not open browser", "url", url, "err", err)
			}
		}

		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "address to listen on (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default from config)")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "do not open the browser")
}
