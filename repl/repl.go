// Package repl implements the interactive shell for the calculator.
//
// The shell reads one statement per line. It is typically used from the
// command line, but OneShot allows using it as a library.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/bigcalc"
)

const (
	helpText = "The program evaluates expressions over arbitrarily large integers, with + - * /, parentheses, and variables."
	farewell = "Bye!"
)

// REPL represents an instance of the interactive shell.
type REPL struct {
	ctx         *bigcalc.Context
	output      io.Writer
	historyPath string
	prompt      string
	banner      string
}

// New returns a new instance of the shell evaluating statements in ctx.
// History is loaded from and saved to historyPath unless it is empty.
func New(ctx *bigcalc.Context, historyPath string, output io.Writer, banner string) *REPL {
	return &REPL{
		ctx:         ctx,
		output:      output,
		historyPath: historyPath,
		prompt:      "> ",
		banner:      banner,
	}
}

// stop is returned by OneShot when the user asks to exit.
type stop struct{}

func (stop) Error() string {
	return "exit"
}

// Loop runs until the user enters /exit, Ctrl+C, Ctrl+D, or an unexpected
// error occurs.
func (r *REPL) Loop() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	r.loadHistory(line)

	if len(r.banner) > 0 {
		fmt.Fprintln(r.output, r.banner)
	}

	for {
		input, err := line.Prompt(r.prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.output, farewell)
			break
		}
		if err != nil {
			fmt.Fprintln(r.output, "error (fatal):", err)
			break
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if err := r.OneShot(input); err != nil {
			if _, ok := err.(stop); ok {
				fmt.Fprintln(r.output, farewell)
				break
			}
			fmt.Fprintln(r.output, "error:", err)
		}
	}

	r.saveHistory(line)
}

// OneShot processes one input line and prints any result or error message.
// Blank lines are ignored. Lines starting with / are commands: /exit ends
// the session, /help prints a description, and anything else prints
// "Unknown command.". A line containing = is an assignment; any other line
// is evaluated as an expression. The returned error is non-nil only when
// the caller should end the session.
func (r *REPL) OneShot(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if strings.HasPrefix(input, "/") {
		switch input {
		case "/exit":
			return stop{}
		case "/help":
			fmt.Fprintln(r.output, helpText)
		default:
			fmt.Fprintln(r.output, "Unknown command.")
		}
		return nil
	}
	if strings.Contains(input, "=") {
		if err := r.ctx.Assign(input); err != nil {
			r.report(err)
		}
		return nil
	}
	v, err := r.ctx.Eval(input)
	if err != nil {
		r.report(err)
		return nil
	}
	fmt.Fprintln(r.output, v)
	return nil
}

// report prints the one-line message for a statement error. Statement
// errors never end the session.
func (r *REPL) report(err error) {
	var serr bigcalc.StatementError
	if errors.As(err, &serr) {
		fmt.Fprintln(r.output, serr.Message())
		return
	}
	fmt.Fprintln(r.output, "error:", err)
}

func (r *REPL) loadHistory(prompt *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Open(r.historyPath); err == nil {
		prompt.ReadHistory(f)
		f.Close()
	}
}

func (r *REPL) saveHistory(prompt *liner.State) {
	if r.historyPath == "" {
		return
	}
	if f, err := os.Create(r.historyPath); err == nil {
		prompt.WriteHistory(f)
		f.Close()
	}
}
