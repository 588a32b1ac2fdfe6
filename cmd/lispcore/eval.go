package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var literal string

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a script, printing the last form's result",
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
			var result string
			var diags []string
			for _, form := range forms {
				result, diags, err = env.runForm(form)
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
			fmt.Println(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&literal, "command", "c", "", "evaluate a literal expression instead of reading a file")
	return cmd
}

func sourceFor(literal string, args []string) (string, error) {
	if literal != "" {
		return literal, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil || len(data) == 0 {
		return "", fmt.Errorf("no script given: pass -c, a file argument, or pipe to stdin")
	}
	return string(data), nil
}
