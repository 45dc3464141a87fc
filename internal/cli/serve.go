package cli

import (
	"fmt"

	"github.com/ehrlich-b/skewb/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long:  `Start a web server providing a browser UI and JSON API for the solver.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := web.NewServer()
		return server.Start(addr)
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
