package sim

// Pose is the part of the character the renderer draws.
type Pose struct {
	Pos               Vec2
	Rotation          float64
	Tilt              float64
	SpringCompression float64
}

// Snapshot is the read-only view of a run exposed to rendering and the HUD.
// Elapsed and DistanceToFinish are the throttled HUD values.
type Snapshot struct {
	Pose             Pose
	OnGround         bool
	Status           Status
	StatusLine       string
	Elapsed          float64
	DistanceToFinish float64
	CameraX          float64
	Tick             int
}

// NewSnapshot copies the presentation fields out of s.
func NewSnapshot(s State) Snapshot {
	ch := s.Character
	return Snapshot{
		Pose: Pose{
			Pos:               ch.Pos,
			Rotation:          ch.Rotation,
			Tilt:              ch.Tilt,
			SpringCompression: ch.SpringCompression,
		},
		OnGround:         ch.OnGround,
		Status:           s.Status,
		StatusLine:       s.StatusLine(),
		Elapsed:          s.HUDElapsed,
		DistanceToFinish: s.HUDDistance,
		CameraX:          s.CameraX,
		Tick:             s.Tick,
	}
}
