package sim

import "math"

// resolveHazards checks body, head and foot against every hazard, then the
// abyss depth. It returns the failure message for the first hit, or "" when
// the character is safe. Later hazards are not examined after a hit.
func resolveHazards(ch *Character, hazards []Hazard) string {
	body := ch.BodyCenter()
	head := ch.HeadCenter()
	foot := ch.Foot()
	for _, h := range hazards {
		if CircleIntersectsRect(h, body.X, body.Y, BodyRadius) {
			return MsgSpikesBody
		}
		if CircleIntersectsRect(h, head.X, head.Y, HeadRadius) {
			return MsgSpikesHead
		}
		if PointInRect(h, foot.X, foot.Y+FootProbeOffset) {
			return MsgSpikesFoot
		}
	}
	if ch.Pos.Y > AbyssDepth {
		return MsgAbyss
	}
	return ""
}

// resolveCeiling pushes the head back under the ceiling and turns any upward
// speed into a weak downward rebound. It returns the overlap removed.
func resolveCeiling(ch *Character, ceiling float64) float64 {
	headY := ch.HeadTopY()
	if headY >= ceiling {
		return 0
	}
	overlap := ceiling - headY
	ch.Pos.Y += overlap
	ch.Vel.Y = math.Max(0, ch.Vel.Y*CeilingRebound)
	return overlap
}

// reachedFinish reports whether the character crossed the finish centre line.
func reachedFinish(ch *Character, finish Zone) bool {
	return ch.Pos.X >= finish.CenterX()
}

func distanceToFinish(lvl *Level, x float64) float64 {
	return math.Max(0, math.Floor(lvl.Finish.CenterX()-x))
}
