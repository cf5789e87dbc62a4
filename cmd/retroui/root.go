package main

import (
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	retrouilog "github.com/prachipatil7/RetroUIMaker/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for retroui.
var rootCmd = &cobra.Command{
	Use:   "retroui",
	Short: "Simplify HTML interfaces around a user's intent",
	Long: `RetroUIMaker takes an existing HTML page and a natural-language intent,
asks a hosted LLM to strip the page down to just what that intent needs,
and writes the simplified, self-contained document to disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A .env file in the working directory may carry the API key.
		_ = godotenv.Load()
		retrouilog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(versionCmd)
}
