package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bibleheadings",
	Short: "Serve a browsable catalog of Bible section headings",
	Long: `bibleheadings serves a fixed catalog of the 66 books of the Bible with
their chapters and section headings, as a searchable HTML page at / and
as JSON at /api/books. Without a subcommand it starts the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "bibleheadings.yml", "config file path (optional)")
}
