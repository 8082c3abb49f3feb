// Package sim is the deterministic pogo physics core. Step advances one
// fixed sub-step as a pure function; Stepper feeds it from frame time.
package sim

import "math"

// Input is the control state sampled once per fixed sub-step.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Reset bool // edge-triggered; consumed by Stepper, ignored by Step
}

// Step advances s by one fixed sub-step. It returns the new state and the
// events raised during the tick. Once the run has ended, Step returns s
// unchanged.
func Step(s State, in Input, lvl *Level) (State, []Event) {
	if s.Status != StatusPlaying {
		return s, nil
	}

	const dt = StepTime
	s.Tick++
	s.Elapsed += dt

	var events []Event
	emit := func(kind EventKind, value float64) {
		events = append(events, Event{Tick: s.Tick, Kind: kind, Value: value})
	}

	ch := &s.Character
	wasGrounded := ch.OnGround
	ch.OnGround = false

	if in.Left {
		ch.Vel.X -= MoveAccel * dt
	}
	if in.Right {
		ch.Vel.X += MoveAccel * dt
	}
	if !in.Left && !in.Right && wasGrounded {
		ch.Vel.X *= IdleFriction
	}
	ch.Vel.X = clamp(ch.Vel.X, -MaxVelocityX, MaxVelocityX)

	ch.Vel.Y += Gravity * dt
	ch.Pos.X += ch.Vel.X * dt
	ch.Pos.Y += ch.Vel.Y * dt
	ch.Pos.X = clamp(ch.Pos.X, 0, lvl.MaxX())

	resolveCollisions(ch, lvl.Platforms, emit)

	if msg := resolveHazards(ch, lvl.Hazards); msg != "" {
		if s.fail(msg) {
			events = append(events, Event{Tick: s.Tick, Kind: EventFail, Message: msg})
		}
		return s, events
	}

	if overlap := resolveCeiling(ch, lvl.Ceiling); overlap > 0 {
		emit(EventBonk, overlap)
	}

	if ch.OnGround {
		ch.Vel.X *= GroundFriction
	} else {
		ch.Vel.X *= AirDrag
	}

	if ch.OnGround {
		target := math.Min(1, math.Abs(ch.Vel.Y)/SpringImpactScale) * SpringImpactGain
		ch.SpringCompression = clamp(ch.SpringCompression*SpringGroundKeep+target*(1-SpringGroundKeep), 0, 1)
		ch.AirborneTimer = 0
	} else {
		ch.SpringCompression = clamp(ch.SpringCompression*SpringAirKeep, 0, 1)
		ch.AirborneTimer += dt
	}

	if in.Jump && ch.OnGround {
		ch.Vel.Y = JumpVelocity
		ch.Vel.X += clamp(ch.Vel.X, -1, 1) * JumpKick
		ch.OnGround = false
		ch.SpringCompression = 1
		emit(EventJumped, ch.Vel.X)
	}

	ch.Tilt = clamp(ch.Tilt*TiltKeep+(ch.Vel.X/MaxVelocityX)*TiltGain, -MaxTilt, MaxTilt)
	if ch.OnGround {
		ch.Rotation *= RotationDecay
	} else {
		ch.Rotation += (ch.Vel.X / SpinRate) * dt
	}

	if reachedFinish(ch, lvl.Finish) && s.win() {
		events = append(events, Event{Tick: s.Tick, Kind: EventVictory, Message: MsgVictory})
	}

	if s.Status == StatusPlaying {
		s.hudTimer += dt
		if s.hudTimer >= HUDInterval {
			s.hudTimer = 0
			s.HUDElapsed = s.Elapsed
			s.HUDDistance = distanceToFinish(lvl, ch.Pos.X)
		}
	}

	return s, events
}
