package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/lmorg/readline/v4"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// repl is an interactive (or piped) read-eval-print loop over an
// environment, accumulating lines until a parenthesis-balanced form is
// ready to run.
type repl struct {
	env    *environment
	input  io.Reader
	output io.Writer
	prompt string
}

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			env := newEnvironment(cfg)
			log.Printf("start up in %g ms", 1000.0*float64(time.Since(start))/1.0e9)

			r := &repl{env: env, input: os.Stdin, output: os.Stdout, prompt: "lispcore> "}
			return r.run()
		},
	}
	return cmd
}

func (r *repl) isInteractive() bool {
	return r.input == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
}

func (r *repl) run() error {
	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runPiped()
}

func (r *repl) runInteractive() error {
	rl := readline.NewInstance()

	var current strings.Builder
	var emptyLines int

	for {
		if current.Len() == 0 {
			rl.SetPrompt("  > ")
		} else {
			rl.SetPrompt("... ")
		}
		line, err := rl.Readline()
		if err != nil {
			return err
		}

		if line == "" {
			if current.Len() == 0 {
				continue
			}
			emptyLines++
			if emptyLines >= 2 {
				fmt.Fprintln(r.output, "Expression abandoned.")
				current.Reset()
				emptyLines = 0
			}
			continue
		}
		emptyLines = 0

		if line == ":reset" || line == ":clear" {
			if current.Len() > 0 {
				fmt.Fprintln(r.output, "Expression abandoned.")
				current.Reset()
			}
			continue
		}
		if current.Len() == 0 && r.handleSpecialCommand(line) {
			continue
		}

		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)

		if !r.tryProcess(current.String()) {
			continue
		}
		current.Reset()
	}
}

func (r *repl) runPiped() error {
	scanner := bufio.NewScanner(r.input)
	var current strings.Builder

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if current.Len() == 0 && r.handleSpecialCommand(line) {
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
		if r.tryProcess(current.String()) {
			current.Reset()
		}
	}
	if current.Len() > 0 {
		r.process(current.String())
	}
	return scanner.Err()
}

// tryProcess attempts to parse and evaluate expr, returning false (and
// leaving the buffer intact) when the text is merely an incomplete form
// still missing its closing parens.
func (r *repl) tryProcess(expr string) bool {
	if !balanced(expr) {
		return false
	}
	r.process(expr)
	return true
}

func (r *repl) process(expr string) {
	forms, err := readAll(expr)
	if err != nil {
		fmt.Fprintf(r.output, "Parse error: %v\n", err)
		return
	}
	for _, form := range forms {
		result, diags, err := r.env.runForm(form)
		for _, d := range diags {
			fmt.Fprintln(r.output, d)
		}
		if err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
			if flagTrace {
				fmt.Fprintln(r.output, r.env.ctx.DebugDump())
			}
			continue
		}
		fmt.Fprintln(r.output, result)
	}
}

func (r *repl) handleSpecialCommand(line string) bool {
	switch line {
	case "quit", "exit":
		if r.isInteractive() {
			fmt.Fprintln(r.output, "Goodbye!")
		}
		os.Exit(0)
		return true
	case "help":
		r.printHelp()
		return true
	default:
		return false
	}
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.output, "Enter an expression to evaluate it.")
	fmt.Fprintln(r.output, "  :reset, :clear   abandon the expression being entered")
	fmt.Fprintln(r.output, "  quit, exit       leave the REPL")
	fmt.Fprintln(r.output, "  help             show this message")
}

// balanced reports whether expr has no unmatched opening parenthesis,
// ignoring parens inside string literals.
func balanced(expr string) bool {
	depth := 0
	inString := false
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '"':
			inString = !inString
		case '\\':
			if inString {
				i++
			}
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString {
				depth--
			}
		}
	}
	return depth <= 0
}
