package cmd

import (
	"ecorpus/cmd/run"
	"ecorpus/internal/conf"
	"ecorpus/internal/flog"

	"github.com/spf13/cobra"
)

var tallyCfg = conf.Conf{Role: "tally"}

var tallyCmd = &cobra.Command{
	Use:   "tally <file>",
	Short: "Count byte values of a file or derive a byte list from it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tallyCfg.Tally.Input = args[0]
		tallyCfg.Log.Level_ = logLevel
		if err := tallyCfg.Finish(); err != nil {
			flog.Fatalf("%v", err)
		}
		run.Start(&tallyCfg)
	},
}

func init() {
	f := tallyCmd.Flags()
	f.Uint32Var(&tallyCfg.Tally.Start, "start", 0, "bytes to skip before counting")
	f.BoolVar(&tallyCfg.Tally.StopOn256, "stop-on-256", false, "stop once all 256 values are seen")
	f.BoolVar(&tallyCfg.Tally.PrintBytes, "print-bytes", false, "write the distinct values to <file>.tally")
	f.BoolVar(&tallyCfg.Tally.PrintOutliers, "print-outliers", false, "list two standard deviation outliers")
}
