package run

import (
	"os"
	"os/signal"
	"syscall"

	"ecorpus/internal/conf"
	"ecorpus/internal/flog"
)

// Start runs the job named by cfg.Role and exits through flog.Fatalf on
// any error.
func Start(cfg *conf.Conf) {
	flog.SetLevel(cfg.Log.Level)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		s := <-sig
		flog.Fatalf("%s received, aborting %s", s, cfg.Role)
	}()

	var err error
	switch cfg.Role {
	case "generate":
		err = startGenerate(cfg)
	case "decode":
		err = startDecode(cfg)
	case "tally":
		err = startTally(cfg)
	default:
		flog.Fatalf("unknown role %q", cfg.Role)
	}
	if err != nil {
		flog.Fatalf("%s failed: %v", cfg.Role, err)
	}
}
