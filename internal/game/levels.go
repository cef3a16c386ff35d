package game

import (
	"golang.org/x/exp/rand"

	"ballattax/internal/gfx"
)

type LevelConfig struct {
	Balls      int
	Background gfx.RGBA
}

// GetLevelConfig returns the settings for a level. Every level adds one ball
// and rolls a new background.
func GetLevelConfig(level int, rng *rand.Rand) LevelConfig {
	return LevelConfig{
		Balls:      max(level, 0),
		Background: randomBackground(rng),
	}
}

// randomBackground picks a mid-bright colour: two channels in [85,255], the
// third balancing their sum to 512.
func randomBackground(rng *rand.Rand) gfx.RGBA {
	r := ColorMinComp + rng.Intn(256-ColorMinComp)
	g := ColorMinComp + rng.Intn(256-ColorMinComp)
	b := clamp(512-r-g, 0, 255)
	return gfx.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// spawnBall places a new ball somewhere above the play area, drifting
// sideways and falling.
func spawnBall(rng *rand.Rand, vp Viewport) *Body {
	u := vp.Unit
	return &Body{
		Kind:   KindBall,
		X:      rng.Float64() * vp.Size,
		Y:      rng.Float64() * -SpawnHeight * u,
		Radius: BallRadius * u,
		VX:     (rng.Float64()*2 - 1) * SpawnSpeedX * u,
		VY:     (rng.Float64() + 1) * SpawnSpeedY * u,
		Color:  gfx.Palette.Ball,
	}
}
