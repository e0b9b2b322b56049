package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rcli/internal/httpserve"

	"github.com/spf13/cobra"
)

func newHTTPCmd() *cobra.Command {
	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP utilities",
	}
	httpCmd.AddCommand(newHTTPServeCmd())
	return httpCmd
}

func newHTTPServeCmd() *cobra.Command {
	var (
		dir  string
		port int
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory over HTTP",
		Long: `Serves files and directory listings from a directory until interrupted.
Everything under /tower/ is served by Go's standard file server instead.

Examples:
  rcli http serve
  rcli http serve -d ./site -p 9000`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Config != nil {
				if !cmd.Flags().Changed("dir") {
					dir = Config.HTTP.Dir
				}
				if !cmd.Flags().Changed("port") {
					port = Config.HTTP.Port
				}
			}
			if err := verifyPath("dir", dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Serving %s on http://localhost:%d\n", dir, port)
			return httpserve.Serve(cmd.Context(), httpserve.Options{Dir: dir, Port: port}, Logger)
		},
	}

	serveCmd.Flags().StringVar(&dir, "dir", ".", "directory to serve")
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	return serveCmd
}
