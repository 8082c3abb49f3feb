package sim

import "math"

// resolveCollisions tests every platform in order for foot and pole-tip
// contact. A later platform overrides what an earlier one did to the same
// character in this tick. Resting contact (impact below RestSpeed) grounds the
// character without emitting a landing.
func resolveCollisions(ch *Character, platforms []Platform, emit func(EventKind, float64)) {
	for _, p := range platforms {
		top := p.Y

		foot := ch.Foot()
		if p.containsX(foot.X) {
			penetration := foot.Y - top
			if penetration >= 0 && penetration <= p.Height+CatchBand && ch.Vel.Y >= 0 {
				impact := ch.Vel.Y
				ch.Pos.Y -= penetration
				ch.Vel.Y *= -p.Bounce
				if math.Abs(ch.Vel.Y) < RestSpeed {
					ch.Vel.Y = 0
				}
				ch.OnGround = true
				if impact >= RestSpeed {
					emit(EventLanded, impact)
				}
			}
		}

		tip := ch.PoleTipY()
		if tip <= top && tip >= top-PoleTipBand {
			if p.spansX(ch.Pos.X-BodyRadius, ch.Pos.X+BodyRadius) && ch.Vel.Y < 0 {
				ch.Pos.Y = top + PogoLength*0.5
				ch.Vel.Y = math.Max(0, ch.Vel.Y)
				emit(EventPoleTip, 0)
			}
		}
	}
}
