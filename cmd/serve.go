package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generated landing page",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		dir, _ := cmd.Flags().GetString("directory")

		if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
			return errors.Wrapf(err, "no generated page found in %s", dir)
		}

		fmt.Printf("Serving %s on port %s\n", dir, port)

		router := mux.NewRouter()
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(dir)))

		return http.ListenAndServe(":"+port, router)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	serveCmd.Flags().StringP("directory", "d", "splugh_dist", "The directory to serve")
}
