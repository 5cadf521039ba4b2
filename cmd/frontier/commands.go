package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/frontier/combat"
	"github.com/katalvlaran/frontier/route"
	"github.com/katalvlaran/frontier/search"
	"github.com/katalvlaran/frontier/synthesis"
)

var (
	routeIn     string
	skipMissing bool

	synthesisIn string

	combatIn   string
	playerHP   int
	playerMana int
	hardMode   bool
)

func routeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runRoute,
		UsageLine: "route -in <file> [options]",
		Short:     "shortest path visiting every city once",
		Long: `
shortest path visiting every city once

	$ frontier route -in <distances> [-sparse]

Each line of the input is "A to B = 12".
`,
		Flag: *flag.NewFlagSet("route", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&routeIn, "in", "", "distance table file")
	cmd.Flag.BoolVar(&skipMissing, "sparse", false, "treat missing legs as no road")
	addCommon(cmd)

	return cmd
}

func synthesisCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSynthesis,
		UsageLine: "synthesis -in <file> [options]",
		Short:     "calibration count and fewest steps to build a molecule",
		Long: `
calibration count and fewest steps to build a molecule

	$ frontier synthesis -in <rules>

The input lists rules "H => HO" followed by the molecule on the last line.
`,
		Flag: *flag.NewFlagSet("synthesis", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&synthesisIn, "in", "", "rules and molecule file")
	addCommon(cmd)

	return cmd
}

func combatCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runCombat,
		UsageLine: "combat -in <file> [options]",
		Short:     "least mana spent to win the wizard duel",
		Long: `
least mana spent to win the wizard duel

	$ frontier combat -in <boss stats> [-hp 50] [-mana 500] [-hard]
`,
		Flag: *flag.NewFlagSet("combat", flag.ExitOnError),
	}
	def := combat.DefaultPlayer()
	cmd.Flag.StringVar(&combatIn, "in", "", "boss stats file")
	cmd.Flag.IntVar(&playerHP, "hp", def.HP, "player hit points")
	cmd.Flag.IntVar(&playerMana, "mana", def.Mana, "player starting mana")
	cmd.Flag.BoolVar(&hardMode, "hard", false, "lose 1 HP at the start of each player turn")
	addCommon(cmd)

	return cmd
}

func allCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runAll,
		UsageLine: "all -route <file> -synthesis <file> -combat <file>",
		Short:     "solve all three puzzles concurrently",
		Flag:      *flag.NewFlagSet("all", flag.ExitOnError),
	}
	def := combat.DefaultPlayer()
	cmd.Flag.StringVar(&routeIn, "route", "", "distance table file")
	cmd.Flag.StringVar(&synthesisIn, "synthesis", "", "rules and molecule file")
	cmd.Flag.StringVar(&combatIn, "combat", "", "boss stats file")
	cmd.Flag.IntVar(&playerHP, "hp", def.HP, "player hit points")
	cmd.Flag.IntVar(&playerMana, "mana", def.Mana, "player starting mana")
	cmd.Flag.BoolVar(&hardMode, "hard", false, "lose 1 HP at the start of each player turn")
	addCommon(cmd)

	return cmd
}

func runRoute(_ *commander.Command, _ []string) error {
	out, err := solveRoute()
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

func runSynthesis(_ *commander.Command, _ []string) error {
	out, err := solveSynthesis()
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

func runCombat(_ *commander.Command, _ []string) error {
	out, err := solveCombat()
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

// runAll runs each puzzle in its own goroutine. Every search owns its
// frontier, so nothing is shared between them.
func runAll(_ *commander.Command, _ []string) error {
	solvers := []func() (string, error){solveRoute, solveSynthesis, solveCombat}
	results := make([]string, len(solvers))

	var g errgroup.Group
	for i, solve := range solvers {
		i, solve := i, solve
		g.Go(func() error {
			out, err := solve()
			results[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}

	return nil
}

func solveRoute() (string, error) {
	lines, err := readLines(routeIn)
	if err != nil {
		return "", fmt.Errorf("route: %w", err)
	}
	tbl, err := route.Parse(lines)
	if err != nil {
		return "", err
	}

	opts := []route.Option{route.WithSearch(search.WithLogger(newLogger("route")))}
	if skipMissing {
		opts = append(opts, route.WithSkipMissing())
	}
	p, err := route.Shortest(tbl, opts...)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("route: %d (%s)", p.Length, p), nil
}

func solveSynthesis() (string, error) {
	lines, err := readLines(synthesisIn)
	if err != nil {
		return "", fmt.Errorf("synthesis: %w", err)
	}
	rules, molecule, err := synthesis.Parse(lines)
	if err != nil {
		return "", err
	}

	n, err := synthesis.Fewest(rules, molecule, search.WithLogger(newLogger("synthesis")))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("synthesis: calibration %d, fewest steps %d", synthesis.Calibrate(rules, molecule), n), nil
}

func solveCombat() (string, error) {
	lines, err := readLines(combatIn)
	if err != nil {
		return "", fmt.Errorf("combat: %w", err)
	}
	boss, err := combat.ParseBoss(lines)
	if err != nil {
		return "", err
	}

	opts := []combat.Option{combat.WithSearch(search.WithLogger(newLogger("combat")))}
	if hardMode {
		opts = append(opts, combat.WithHardMode())
	}
	st, err := combat.LeastMana(boss, combat.Player{HP: playerHP, Mana: playerMana}, opts...)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("combat: %d mana %v", st.Spent, st.History), nil
}
