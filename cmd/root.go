package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	outputDirectory string
	fileFormat      string
	force           bool
	minify          bool
)

var rootCmd = &cobra.Command{
	Use:   "splugh SRC",
	Short: "Splugh - Generate a static landing page from a config file",
	Long: `Splugh reads a small YAML or JSON file describing a landing page and
renders it into a static HTML/JS bundle with one keyboard shortcut per link.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0])
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputDirectory, "output-directory", "o", "splugh_dist", "The output directory")
	rootCmd.Flags().StringVarP(&fileFormat, "type", "t", "", "The input file format; json or yaml (default is selected from the file extension)")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Delete the output directory first if it already exists")
	rootCmd.Flags().BoolVar(&minify, "minify", false, "Minify the generated javascript")
}
