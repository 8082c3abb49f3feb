package main

import (
	"testing"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

func TestScenarioNames_Sorted(t *testing.T) {
	names := scenarioNames()
	want := []string{"drop", "hop-right", "idle", "random", "sprint-right"}
	if len(names) != len(want) {
		t.Fatalf("expected %d scenarios, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestRunScenario_IdleStaysOnStartPlatform(t *testing.T) {
	rs, _ := runScenario(sim.DefaultLevel(), "idle", scenarios["idle"](1), 300, false)
	if rs.report.Status != sim.StatusPlaying {
		t.Fatalf("expected idle run to keep playing, got %s", rs.report.Status)
	}
	if rs.firstLandingTick < 0 {
		t.Fatal("expected the rider to land on the start platform")
	}
	if rs.endTick != -1 {
		t.Fatalf("expected no end tick, got %d", rs.endTick)
	}
}

func TestRunScenario_SprintRightEndsTheRun(t *testing.T) {
	// Skidding right without hopping runs into the first spike pit.
	rs, _ := runScenario(sim.DefaultLevel(), "sprint-right", scenarios["sprint-right"](1), 1800, false)
	if !rs.report.Status.Terminal() {
		t.Fatalf("expected a terminal outcome, got %s", rs.report.Status)
	}
	if rs.endTick <= 0 || rs.endKind != rs.report.Status.String() {
		t.Fatalf("expected end marker to match outcome, got %d(%s)", rs.endTick, rs.endKind)
	}
}

func TestRunScenario_DropLandsHarder(t *testing.T) {
	idle, _ := runScenario(sim.DefaultLevel(), "idle", scenarios["idle"](1), 200, false)
	drop, _ := runScenario(sim.DefaultLevel(), "drop", scenarios["drop"](1), 200, false)
	if drop.report.HardestHit <= idle.report.HardestHit {
		t.Fatalf("expected drop impact %.1f > idle impact %.1f", drop.report.HardestHit, idle.report.HardestHit)
	}
}

func TestRandomScript_Reproducible(t *testing.T) {
	a := randomScript(7)
	b := randomScript(7)
	for tick := 1; tick <= 500; tick++ {
		if a(tick) != b(tick) {
			t.Fatalf("scripts diverged at tick %d", tick)
		}
	}
}

func TestJoinCounts(t *testing.T) {
	got := joinCounts(map[string]int{"victory": 1, "fail": 2})
	if got != "fail=2 victory=1" {
		t.Fatalf("unexpected join: %q", got)
	}
	if joinCounts(nil) != "none" {
		t.Fatal("expected none for empty counts")
	}
}

func TestAvgTickString(t *testing.T) {
	if avgTickString(nil) != "n/a" {
		t.Fatal("expected n/a for no samples")
	}
	if got := avgTickString([]int{10, 20}); got != "15.0" {
		t.Fatalf("expected 15.0, got %s", got)
	}
}
