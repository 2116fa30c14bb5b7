package cmd

import (
	"ecorpus/cmd/run"
	"ecorpus/internal/conf"
	"ecorpus/internal/flog"

	"github.com/spf13/cobra"
)

var decCfg = conf.Conf{Role: "decode"}

var decodeCmd = &cobra.Command{
	Use:   "decode <corpus|stream:directives> <input|-> <output|->",
	Short: "Map a distance token file back through a corpus",
	Example: `  ecorpus decode corpus.bin secret.enc secret.txt
  ecorpus decode stream:corpus.stream - - --start 512 < secret.enc`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		decCfg.Decode.Corpus = args[0]
		decCfg.Decode.Input = args[1]
		decCfg.Decode.Output = args[2]
		decCfg.Log.Level_ = logLevel
		if err := decCfg.Finish(); err != nil {
			flog.Fatalf("%v", err)
		}
		run.Start(&decCfg)
	},
}

func init() {
	decodeCmd.Flags().Uint32Var(&decCfg.Decode.Start, "start", 0, "corpus offset the walk starts from")
}
