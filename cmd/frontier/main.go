// Command frontier solves the route, synthesis and combat puzzles from
// input files with the best-first search engine.
//
//	frontier route -in distances.txt
//	frontier synthesis -in rules.txt
//	frontier combat -in boss.txt -hp 50 -mana 500 -hard
//	frontier all -route distances.txt -synthesis rules.txt -combat boss.txt
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var verbose bool

func main() {
	app := &commander.Command{
		UsageLine: "frontier <command> [options]",
		Short:     "best-first puzzle solvers",
		Subcommands: []*commander.Command{
			routeCmd(),
			synthesisCmd(),
			combatCmd(),
			allCmd(),
		},
		Flag: *flag.NewFlagSet("frontier", flag.ExitOnError),
	}

	if err := app.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger; -v lowers the level to Debug.
func newLogger(puzzle string) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slog.New(h).With("puzzle", puzzle)
}

// readLines returns the lines of path, without the trailing empty line.
func readLines(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("no input file given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

// addCommon registers flags every subcommand accepts.
func addCommon(cmd *commander.Command) {
	cmd.Flag.BoolVar(&verbose, "v", false, "log search progress at debug level")
}
