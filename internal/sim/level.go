package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is wrapped by every geometry validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// Vec2 is a world-space vector. Y increases downward.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Platform is a solid block whose top surface is at Y.
type Platform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bounce float64 `json:"bounce"` // restitution applied on landing, in (0,1)
}

// Hazard is a spike strip anchored at its base Y, extending upward by Height.
type Hazard struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Top returns the y-coordinate of the spike tips.
func (h Hazard) Top() float64 {
	return h.Y - h.Height
}

// Zone is the finish post area.
type Zone struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal centre of the zone; crossing it wins the run.
func (z Zone) CenterX() float64 {
	return z.X + z.Width/2
}

// Level is the static description of a course. It is never mutated once loaded.
type Level struct {
	Name      string     `json:"name"`
	Width     float64    `json:"width"`
	Ceiling   float64    `json:"ceiling"`
	Start     Vec2       `json:"start"`
	Platforms []Platform `json:"platforms"`
	Hazards   []Hazard   `json:"hazards"`
	Finish    Zone       `json:"finish"`
}

// DefaultLevel returns the built-in course.
func DefaultLevel() *Level {
	return &Level{
		Name:    "Spike Valley",
		Width:   2400,
		Ceiling: 40,
		Start:   Vec2{X: 140, Y: 430},
		Platforms: []Platform{
			{X: 0, Y: 470, Width: 620, Height: 250, Bounce: 0.28},
			{X: 700, Y: 450, Width: 280, Height: 220, Bounce: 0.32},
			{X: 1050, Y: 420, Width: 260, Height: 220, Bounce: 0.35},
			{X: 1380, Y: 450, Width: 260, Height: 220, Bounce: 0.28},
			{X: 1700, Y: 470, Width: 400, Height: 230, Bounce: 0.3},
		},
		Hazards: []Hazard{
			{X: 620, Y: 470, Width: 80, Height: 90},
			{X: 1320, Y: 450, Width: 70, Height: 80},
		},
		Finish: Zone{X: 2140, Y: 360, Width: 60, Height: 160},
	}
}

// MaxX is the largest x the character may occupy.
func (l *Level) MaxX() float64 {
	return l.Width - CharacterWidth
}

// Validate checks the geometry before a run starts. Overlapping shapes are
// allowed; platform iteration order decides which contact wins.
func (l *Level) Validate() error {
	if l.Width <= CharacterWidth {
		return fmt.Errorf("width %.1f must exceed character width %.0f: %w", l.Width, CharacterWidth, ErrInvalidLevel)
	}
	if l.Ceiling >= AbyssDepth {
		return fmt.Errorf("ceiling %.1f is below the abyss depth %.0f: %w", l.Ceiling, AbyssDepth, ErrInvalidLevel)
	}
	if l.Start.X < 0 || l.Start.X > l.MaxX() {
		return fmt.Errorf("start x %.1f outside [0, %.1f]: %w", l.Start.X, l.MaxX(), ErrInvalidLevel)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("no platforms: %w", ErrInvalidLevel)
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d has non-positive size %.1fx%.1f: %w", i, p.Width, p.Height, ErrInvalidLevel)
		}
		if p.Bounce <= 0 || p.Bounce >= 1 {
			return fmt.Errorf("platform %d bounce %.2f outside (0,1): %w", i, p.Bounce, ErrInvalidLevel)
		}
	}
	for i, h := range l.Hazards {
		if h.Width <= 0 || h.Height <= 0 {
			return fmt.Errorf("hazard %d has non-positive size %.1fx%.1f: %w", i, h.Width, h.Height, ErrInvalidLevel)
		}
	}
	if l.Finish.Width <= 0 || l.Finish.Height <= 0 {
		return fmt.Errorf("finish zone has non-positive size: %w", ErrInvalidLevel)
	}
	if l.Finish.CenterX() > l.MaxX() {
		return fmt.Errorf("finish centre %.1f is unreachable (max x %.1f): %w", l.Finish.CenterX(), l.MaxX(), ErrInvalidLevel)
	}
	return nil
}
