package sim

// Rig and physics tuning. Distances are world units, times are seconds.
const (
	StepTime     = 1.0 / 60 // fixed sub-step
	MaxFrameTime = 0.05     // largest wall-clock delta accepted per Tick

	Gravity      = 2200.0
	MoveAccel    = 1500.0
	MaxVelocityX = 420.0
	JumpVelocity = -1050.0
	JumpKick     = 60.0 // horizontal boost on take-off, scaled by direction

	IdleFriction   = 0.8
	GroundFriction = 0.82
	AirDrag        = 0.88

	PogoLength     = 110.0
	BodyRadius     = 28.0
	HeadRadius     = 18.0
	CharacterWidth = 40.0

	CatchBand       = 60.0 // extra depth below a platform top that still counts as a landing
	RestSpeed       = 60.0 // reflected speeds below this snap to zero
	PoleTipBand     = 40.0
	CeilingRebound  = -0.2
	FootProbeOffset = 4.0
	AbyssDepth      = 760.0

	SpringImpactScale = 900.0
	SpringImpactGain  = 0.45
	SpringGroundKeep  = 0.92
	SpringAirKeep     = 0.85

	TiltKeep      = 0.85
	TiltGain      = 0.18
	MaxTilt       = 0.5
	SpinRate      = 320.0 // vx per radian/second while airborne
	RotationDecay = 0.6

	HUDInterval = 0.12
)

// Character is the pogo rider. Pos is the foot of the pole.
type Character struct {
	Pos               Vec2
	Vel               Vec2
	Rotation          float64 // free spin, accumulates only while airborne
	Tilt              float64 // lean in [-MaxTilt, MaxTilt]
	SpringCompression float64 // in [0,1]
	OnGround          bool
	AirborneTimer     float64
}

// NewCharacter returns a rider at rest at the level's start point.
func NewCharacter(start Vec2) Character {
	return Character{Pos: start}
}

// Foot returns the contact point at the bottom of the pole.
func (c *Character) Foot() Vec2 {
	return c.Pos
}

// PoleTipY returns the y of the upper pole end used for underside contact.
func (c *Character) PoleTipY() float64 {
	return c.Pos.Y - PogoLength*0.5
}

// BodyCenter returns the centre of the torso circle.
func (c *Character) BodyCenter() Vec2 {
	return Vec2{X: c.Pos.X, Y: c.Pos.Y - PogoLength*0.7}
}

// HeadCenter returns the centre of the head circle.
func (c *Character) HeadCenter() Vec2 {
	body := c.BodyCenter()
	return Vec2{X: c.Pos.X, Y: body.Y - BodyRadius - HeadRadius + 6}
}

// HeadTopY returns the highest point of the head, tested against the ceiling.
func (c *Character) HeadTopY() float64 {
	return c.Pos.Y - PogoLength*0.9 - BodyRadius - HeadRadius
}
