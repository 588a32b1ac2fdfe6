package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newCheckCmd runs every top-level form purely for its diagnostics: it
// never prints a result, and exits non-zero the first time a form fails
// to parse or evaluate. Useful in scripts and CI that only care whether
// a file is well-formed, not what it returns.
func newCheckCmd() *cobra.Command {
	var literal string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Evaluate a script for diagnostics only, without printing a result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sourceFor(literal, args)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			forms, err := readAll(src)
			if err != nil {
				return fmt.Errorf("parse error: %w", err)
			}

			env := newEnvironment(cfg)
			for _, form := range forms {
				_, diags, err := env.runForm(form)
				for _, d := range diags {
					fmt.Fprintln(os.Stderr, d)
				}
				if err != nil {
					if flagTrace {
						fmt.Fprintln(os.Stderr, env.ctx.DebugDump())
					}
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&literal, "command", "c", "", "check a literal expression instead of reading a file")
	return cmd
}
