package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		port  int
		host  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview a built site with live reload",
		Long: `Serve a built site directory locally.

The server watches the directory for changes and refreshes
connected browsers over a WebSocket. The directory defaults to
the serve.dir entry in weft.yaml, or dist/ without a manifest.

Examples:
  weft serve
  weft serve out
  weft serve --port=3000
  weft serve --watch=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runServe(dir, host, port, watch, cmd.Flags().Changed("watch"))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from weft.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from weft.yaml)")
	cmd.Flags().BoolVar(&watch, "watch", true, "Watch for changes and push reloads")

	return cmd
}

func runServe(dir, host string, port int, watch, watchSet bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if dir != "" {
		cfg.Serve.Dir = dir
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if port > 0 {
		cfg.Serve.Port = port
	}
	if watchSet {
		cfg.Serve.Watch = watch
	}

	root := cfg.ServePath()
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		errorMsg("Directory %s does not exist", cfg.Serve.Dir)
		info("Run your site generator first, or pass a directory: weft serve <dir>")
		return fmt.Errorf("no site directory at %s", root)
	}

	printBanner()
	fmt.Println()
	info("Serving %s at %s", cfg.Serve.Dir, cfg.URL())
	if cfg.Serve.Watch {
		info("Watching for changes (Ctrl+C to stop)")
	}
	fmt.Println()

	srv, err := preview.New(root,
		preview.WithAddr(cfg.Address()),
		preview.WithWatch(cfg.Serve.Watch),
		preview.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}

	fmt.Println()
	success("Server stopped")
	return nil
}
