package sim

import (
	"fmt"
	"math"
	"strings"
)

// RunStats accumulates per-tick measurements that the event log does not carry.
type RunStats struct {
	StartY      float64
	PeakY       float64 // smallest foot y reached (y grows downward)
	MaxX        float64
	MaxAirtime  float64
	MaxSpeedX   float64
	GroundTicks int
	AirTicks    int
}

func newRunStats(start Vec2) RunStats {
	return RunStats{StartY: start.Y, PeakY: start.Y, MaxX: start.X}
}

func (rs *RunStats) observe(ch *Character) {
	rs.PeakY = math.Min(rs.PeakY, ch.Pos.Y)
	rs.MaxX = math.Max(rs.MaxX, ch.Pos.X)
	rs.MaxAirtime = math.Max(rs.MaxAirtime, ch.AirborneTimer)
	rs.MaxSpeedX = math.Max(rs.MaxSpeedX, math.Abs(ch.Vel.X))
	if ch.OnGround {
		rs.GroundTicks++
	} else {
		rs.AirTicks++
	}
}

// RunReport summarises one run for the headless report and the clipboard export.
type RunReport struct {
	Level      string
	Status     Status
	Message    string
	Ticks      int
	Elapsed    float64
	FinalX     float64
	FinalY     float64
	Distance   float64 // remaining distance to the finish centre
	Progress   float64 // 0..1 of the horizontal course covered
	Landings   int
	HardestHit float64
	Jumps      int
	Bonks      int
	PoleTips   int
	Resets     int
	Stats      RunStats
}

// BuildRunReport assembles a report from the stepper's current run.
func BuildRunReport(st *Stepper) RunReport {
	s := st.State()
	lvl := st.Level()
	log := st.Log()

	r := RunReport{
		Level:    lvl.Name,
		Status:   s.Status,
		Message:  s.Message,
		Ticks:    s.Tick,
		Elapsed:  s.Elapsed,
		FinalX:   s.Character.Pos.X,
		FinalY:   s.Character.Pos.Y,
		Distance: distanceToFinish(lvl, s.Character.Pos.X),
		Stats:    st.Stats(),
	}
	span := lvl.Finish.CenterX() - lvl.Start.X
	if span > 0 {
		r.Progress = clamp((s.Character.Pos.X-lvl.Start.X)/span, 0, 1)
	}

	if log == nil {
		return r
	}
	// Only count entries from the current run: everything after the last reset.
	entries := log.Entries()
	from := 0
	for i, e := range entries {
		if e.Key == EventReset.String() {
			from = i + 1
			r.Resets++
		}
	}
	for _, e := range entries[from:] {
		switch e.Key {
		case EventLanded.String():
			r.Landings++
			r.HardestHit = math.Max(r.HardestHit, e.NumVal)
		case EventJumped.String():
			r.Jumps++
		case EventBonk.String():
			r.Bonks++
		case EventPoleTip.String():
			r.PoleTips++
		}
	}
	return r
}

// Format renders the report as plain text.
func (r RunReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Pogo run report: %s ---\n", r.Level)
	fmt.Fprintf(&sb, "outcome=%s ticks=%d elapsed=%.2fs\n", r.Status, r.Ticks, r.Elapsed)
	fmt.Fprintf(&sb, "message: %s\n", r.Message)
	fmt.Fprintf(&sb, "position: (%.1f, %.1f)  to_finish=%.0f  progress=%.0f%%\n",
		r.FinalX, r.FinalY, r.Distance, r.Progress*100)
	fmt.Fprintf(&sb, "contacts: landings=%d hardest=%.1f bonks=%d pole_tips=%d\n",
		r.Landings, r.HardestHit, r.Bonks, r.PoleTips)
	fmt.Fprintf(&sb, "movement: jumps=%d peak_rise=%.1f max_airtime=%.2fs max_speed_x=%.1f\n",
		r.Jumps, r.Stats.StartY-r.Stats.PeakY, r.Stats.MaxAirtime, r.Stats.MaxSpeedX)
	fmt.Fprintf(&sb, "ground_ticks=%d air_ticks=%d resets=%d\n", r.Stats.GroundTicks, r.Stats.AirTicks, r.Resets)
	return sb.String()
}
