package cmd

import (
	"ecorpus/cmd/run"
	"ecorpus/internal/conf"
	"ecorpus/internal/flog"

	"github.com/spf13/cobra"
)

var confPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the job described by a YAML or TOML file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := conf.LoadFromFile(confPath)
		if err != nil {
			flog.Fatalf("Failed to load configuration: %v", err)
		}
		if cmd.Flags().Changed("log-level") {
			lvl, _ := flog.ParseLevel(logLevel)
			cfg.Log.Level = lvl
		}
		run.Start(cfg)
	},
}

func init() {
	runCmd.Flags().StringVarP(&confPath, "config", "c", "config.yaml", "job file (.yaml or .toml)")
}
