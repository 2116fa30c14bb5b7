package cmd

import (
	"os"

	"ecorpus/internal/flog"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "ecorpus",
	Short: "Generate, validate and walk substitution corpora",
	Long: `ecorpus builds pseudorandom corpora, decodes distance token files
through them, and tallies byte distributions of arbitrary files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := flog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		flog.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error, none")
	rootCmd.AddCommand(generateCmd, decodeCmd, tallyCmd, runCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
