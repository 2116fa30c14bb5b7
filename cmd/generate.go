package cmd

import (
	"ecorpus/cmd/run"
	"ecorpus/internal/conf"
	"ecorpus/internal/flog"

	"github.com/spf13/cobra"
)

var genCfg = conf.Conf{Role: "generate"}

var (
	skipRandomMask = conf.Mask(0xFF)
	filterMask     = conf.Mask(0xFF)
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a corpus file and check its coverage",
	Example: `  ecorpus generate --corpus c.bin --corpus-size 100000 --uniform --key 2041
  ecorpus generate --corpus c.bin --corpus-size 4096 --byte-list plain.txt.tally`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		g := &genCfg.Generator
		g.SkipRandomMask = &skipRandomMask
		g.FilterMask = &filterMask
		genCfg.Log.Level_ = logLevel
		if err := genCfg.Finish(); err != nil {
			flog.Fatalf("%v", err)
		}
		run.Start(&genCfg)
	},
}

func init() {
	bindGenerator(generateCmd, &genCfg.Generator)
	f := generateCmd.Flags()
	f.StringVar(&genCfg.Corpus.Path, "corpus", "", "output corpus file")
	f.Uint32Var(&genCfg.Corpus.Size, "corpus-size", 0, "number of corpus bytes to generate")
	f.Var(&skipRandomMask, "skip-random-mask", "mask applied to random skip draws (octal 0377, hex 0xff or decimal)")
	f.Var(&filterMask, "filter-mask", "mask applied to filter file skip counts")
	generateCmd.MarkFlagRequired("corpus")
	generateCmd.MarkFlagRequired("corpus-size")
}

func bindGenerator(c *cobra.Command, g *conf.Generator) {
	f := c.Flags()
	f.BoolVar(&g.Uniform, "uniform", false, "emit every alphabet value once per cycle")
	f.Uint32Var(&g.Key, "key", 0, "sequencer seed; 0 derives one from --key-phrase or the clock")
	f.StringVar(&g.KeyPhrase, "key-phrase", "", "passphrase hashed into the seed")
	f.Uint32Var(&g.StartSkip, "start-skip", 0, "draws to discard before the first token")
	f.Uint32Var(&g.Skip, "skip", 0, "draws to discard before every token")
	f.BoolVar(&g.SkipRandom, "skip-random", false, "add a masked random count to every skip")
	f.StringVar(&g.ByteList, "byte-list", "", "file whose distinct byte values form the alphabet")
	f.StringVar(&g.FilterFile, "filter-file", "", "file supplying extra skip counts")
	f.Uint32Var(&g.FilterSkip, "filter-skip", 0, "filter file bytes to discard once")
	f.StringVar(&g.Sequencer, "sequencer", "go", "pseudorandom sequencer: go, glibc")
	f.Uint32Var(&g.MaxRetries, "max-retries", 0, "rejected draws allowed per token; 0 is unbounded")
}
