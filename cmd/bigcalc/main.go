// Command bigcalc is an interactive arbitrary-precision integer calculator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zephyrtronium/bigcalc"
	"github.com/zephyrtronium/bigcalc/repl"
)

func main() {
	log.SetFlags(0)
	var (
		history string
		quiet   bool
		with    [][2]string
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&history, "history", defaultHistory(), "command history file (empty to disable)")
	flag.BoolVar(&quiet, "q", false, "don't print the banner")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.Parse()

	ctx := bigcalc.NewContext()
	for _, d := range with {
		if err := ctx.Assign(d[0] + "=" + d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	banner := "Enter an expression, an assignment, or /help."
	if quiet {
		banner = ""
	}
	repl.New(ctx, history, os.Stdout, banner).Loop()
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bigcalc_history")
}
