package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64
	report   sim.RunReport

	firstLandingTick int
	firstJumpTick    int
	firstBonkTick    int
	endTick          int
	endKind          string
}

// scenarios maps a name to an input script builder. The seed only matters
// for scripts that randomise their timing.
var scenarios = map[string]func(seed int64) func(tick int) sim.Input{
	"idle": func(int64) func(int) sim.Input {
		return func(int) sim.Input { return sim.Input{} }
	},
	"hop-right": func(int64) func(int) sim.Input {
		return func(int) sim.Input { return sim.Input{Right: true, Jump: true} }
	},
	"sprint-right": func(int64) func(int) sim.Input {
		return func(int) sim.Input { return sim.Input{Right: true} }
	},
	"drop": func(int64) func(int) sim.Input {
		return func(int) sim.Input { return sim.Input{} }
	},
	"random": randomScript,
}

// randomScript holds a random control combination for a random number of ticks.
func randomScript(seed int64) func(int) sim.Input {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible scenario
	var cur sim.Input
	until := 0
	return func(tick int) sim.Input {
		if tick >= until {
			cur = sim.Input{
				Left:  rng.Intn(4) == 0,
				Right: rng.Intn(3) != 0,
				Jump:  rng.Intn(2) == 0,
			}
			until = tick + 10 + rng.Intn(50)
		}
		return cur
	}
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var levelPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 3, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 1800, "maximum ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1 (random scenario)")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "hop-right", "scenario name: "+strings.Join(scenarioNames(), ", "))
	flag.StringVar(&levelPath, "level", "", "level JSON file (default: built-in level)")
	flag.BoolVar(&verbose, "verbose", false, "print the full event log of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	build, ok := scenarios[scenario]
	if !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, strings.Join(scenarioNames(), ", "))
		return
	}

	lvl := sim.DefaultLevel()
	if levelPath != "" {
		var err error
		lvl, err = sim.LoadLevel(levelPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Headless Pogo Report ===\n")
	fmt.Printf("level=%q scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		lvl.Name, scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, log := runScenario(lvl, scenario, build(seed), ticks, verbose)
		rs.runIndex = i + 1
		rs.seed = seed
		all = append(all, rs)
		printRun(rs)
		if verbose {
			fmt.Print(log.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

func runScenario(lvl *sim.Level, scenario string, script func(int) sim.Input, ticks int, verbose bool) (runStats, *sim.SimLog) {
	opts := []sim.RunOption{
		sim.WithLevel(lvl),
		sim.WithVerbose(verbose),
		sim.WithInputScript(script),
	}
	if scenario == "drop" {
		opts = append(opts, sim.WithStart(lvl.Start.X, lvl.Start.Y-230))
	}
	tr := sim.NewTestRun(opts...)
	tr.RunUntil(func(s sim.State) bool { return s.Status.Terminal() }, ticks)

	entries := tr.SimLog.Entries()
	rs := runStats{
		report:           tr.Report(),
		firstLandingTick: firstTick(entries, "contact", "landed"),
		firstJumpTick:    firstTick(entries, "move", "jumped"),
		firstBonkTick:    firstTick(entries, "contact", "bonk"),
		endTick:          -1,
	}
	if e, ok := tr.SimLog.LastOf("status", ""); ok && e.Key != "reset" {
		rs.endTick = e.Tick
		rs.endKind = e.Key
	}
	return rs, tr.SimLog
}

func firstTick(entries []sim.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(rs.report.Format())
	fmt.Printf("phase_markers: first_landing=%d first_jump=%d first_bonk=%d end=%d(%s)\n",
		rs.firstLandingTick, rs.firstJumpTick, rs.firstBonkTick, rs.endTick, orNone(rs.endKind))
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[string]int{}
	messages := map[string]int{}
	totalLandings := 0
	totalJumps := 0
	totalBonks := 0
	progress := 0.0
	endTicks := make([]int, 0, len(all))

	for _, rs := range all {
		outcomes[rs.report.Status.String()]++
		if rs.report.Status == sim.StatusFail {
			messages[rs.report.Message]++
		}
		totalLandings += rs.report.Landings
		totalJumps += rs.report.Jumps
		totalBonks += rs.report.Bonks
		progress += rs.report.Progress
		if rs.endTick >= 0 {
			endTicks = append(endTicks, rs.endTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d outcomes: %s\n", len(all), joinCounts(outcomes))
	fmt.Printf("avg_events_per_run: landings=%.1f jumps=%.1f bonks=%.1f\n",
		avg(totalLandings, len(all)), avg(totalJumps, len(all)), avg(totalBonks, len(all)))
	fmt.Printf("avg_progress=%.0f%% avg_end_tick=%s\n", progress/float64(len(all))*100, avgTickString(endTicks))
	if len(messages) > 0 {
		fmt.Printf("fail_causes: %s\n", joinCounts(messages))
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
