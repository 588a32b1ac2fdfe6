package main

import (
	"github.com/spf13/cobra"

	"github.com/proofscript/lispcore/host"
)

var (
	flagRCPath        string
	flagMaxStackDepth int
	flagTrace         bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lispcore",
		Short: "A standalone driver for the evaluator core",
		Long: "lispcore evaluates the small embedded scripting language a proof\n" +
			"elaborator would host, outside of any actual elaborator.",
	}

	root.PersistentFlags().StringVar(&flagRCPath, "rc", ".lispcorerc", "path to a config file overlaying default resource limits")
	root.PersistentFlags().IntVar(&flagMaxStackDepth, "max-stack-depth", 0, "override the control stack depth limit (0: use config/default)")
	root.PersistentFlags().BoolVar(&flagTrace, "trace", false, "on error, dump the control stack and local bindings")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newCheckCmd())

	return root
}

func loadConfig() (host.Config, error) {
	cfg, err := host.LoadConfig(flagRCPath)
	if err != nil {
		return cfg, err
	}
	if flagMaxStackDepth > 0 {
		cfg.MaxStackDepth = flagMaxStackDepth
	}
	return cfg, nil
}
