package sim

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every number a Session is built from. Width and Height are
// half extents: the container spans [PosX-Width, PosX+Width] horizontally
// and [PosY-Height, PosY+Height] vertically, with the floor at the bottom
// (Y grows downward).
type Config struct {
	Width            float64 `yaml:"Width"`
	Height           float64 `yaml:"Height"`
	PosX             float64 `yaml:"PosX"`
	PosY             float64 `yaml:"PosY"`
	Gravity          float64 `yaml:"Gravity"`
	Restitution      float64 `yaml:"Restitution"`
	PieceRestitution float64 `yaml:"PieceRestitution"`
	TickRate         int64   `yaml:"TickRate"`
	PendingY         float64 `yaml:"PendingY"`
	NudgeStep        float64 `yaml:"NudgeStep"`
	OverflowMargin   float64 `yaml:"OverflowMargin"`
	Seed             int64   `yaml:"Seed"`
}

func DefaultConfig() Config {
	return Config{
		Width:            0.6,
		Height:           0.72,
		PosX:             0,
		PosY:             0.05,
		Gravity:          4,
		Restitution:      0.2,
		PieceRestitution: 0.2,
		TickRate:         30,
		PendingY:         -0.8,
		NudgeStep:        0.05,
		OverflowMargin:   0,
	}
}

// Dt is the fixed duration of one tick, in seconds.
func (c Config) Dt() float64 {
	return 1 / float64(c.TickRate)
}

func (c Config) Validate() error {
	if !(c.Width > 0) || !isFinite(c.Width) {
		return fmt.Errorf("%w: width %v", ErrInvalidConfig, c.Width)
	}
	if !(c.Height > 0) || !isFinite(c.Height) {
		return fmt.Errorf("%w: height %v", ErrInvalidConfig, c.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.TickRate)
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"PosX", c.PosX},
		{"PosY", c.PosY},
		{"Gravity", c.Gravity},
		{"PendingY", c.PendingY},
		{"NudgeStep", c.NudgeStep},
		{"OverflowMargin", c.OverflowMargin},
	} {
		if !isFinite(f.val) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, f.name, f.val)
		}
	}
	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("%w: restitution %v outside [0, 1]",
			ErrInvalidConfig, c.Restitution)
	}
	if c.PieceRestitution < 0 || c.PieceRestitution > 1 {
		return fmt.Errorf("%w: piece restitution %v outside [0, 1]",
			ErrInvalidConfig, c.PieceRestitution)
	}
	if c.NudgeStep < 0 {
		return fmt.Errorf("%w: nudge step %v", ErrInvalidConfig, c.NudgeStep)
	}
	return nil
}

const (
	FloorWall = 0
	LeftWall  = 1
	RightWall = 2
)

// Container is the static box the pieces fall into. It has a floor and two
// side walls, the top is open.
type Container struct {
	Width       float64
	Height      float64
	Pos         Vec
	Walls       [3]Body
	Restitution float64
}

func NewContainer(cfg Config) (c Container) {
	c.Width = cfg.Width
	c.Height = cfg.Height
	c.Pos = Vec{cfg.PosX, cfg.PosY}
	c.Restitution = cfg.Restitution
	c.Walls[FloorWall] = *NewPlane(Vec{c.Pos.X, c.Floor()}, Vec{0, -1},
		c.Restitution)
	c.Walls[LeftWall] = *NewPlane(Vec{c.Left(), c.Pos.Y}, Vec{1, 0},
		c.Restitution)
	c.Walls[RightWall] = *NewPlane(Vec{c.Right(), c.Pos.Y}, Vec{-1, 0},
		c.Restitution)
	return
}

func (c *Container) Left() float64 {
	return c.Pos.X - c.Width
}

func (c *Container) Right() float64 {
	return c.Pos.X + c.Width
}

func (c *Container) Floor() float64 {
	return c.Pos.Y + c.Height
}

// Top is the rim of the container. Pieces that stick out above it end the
// game.
func (c *Container) Top() float64 {
	return c.Pos.Y - c.Height
}

// ClampX limits the x coordinate of a circle of radius r so that it fits
// between the side walls.
func (c *Container) ClampX(x float64, r float64) float64 {
	return Clamp(x, c.Left()+r, c.Right()-r)
}
