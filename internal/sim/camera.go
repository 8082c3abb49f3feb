package sim

// CameraLerp is the fraction of the remaining distance covered per render frame.
const CameraLerp = 0.12

// Camera is the horizontal viewport offset used by the renderer.
type Camera struct {
	X float64
}

// Follow eases X toward centring targetX in a viewport of width viewportW,
// then clamps it to the level. When the level is narrower than the viewport
// the camera stays at 0.
func (c *Camera) Follow(targetX, viewportW, levelW float64) {
	next := c.X + (targetX-c.X-viewportW/2)*CameraLerp
	c.X = clamp(next, 0, levelW-viewportW)
}
