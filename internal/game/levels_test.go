package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandomBackgroundRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := randomBackground(rng)
		if c.R < ColorMinComp || c.G < ColorMinComp {
			t.Fatalf("channel below minimum: %+v", c)
		}
		want := clamp(512-int(c.R)-int(c.G), 0, 255)
		if int(c.B) != want || c.A != 255 {
			t.Fatalf("blue/alpha: got %+v want b=%d", c, want)
		}
	}
}

func TestGetLevelConfigBallCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for level := 1; level <= 5; level++ {
		if got := GetLevelConfig(level, rng).Balls; got != level {
			t.Fatalf("level %d: got %d balls", level, got)
		}
	}
}

func TestSpawnBallRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	vp := FitViewport(300, 300)
	u := vp.Unit
	for i := 0; i < 500; i++ {
		b := spawnBall(rng, vp)
		if b.Kind != KindBall || b.Radius != BallRadius*u {
			t.Fatalf("bad ball: %+v", b)
		}
		if b.X < 0 || b.X >= vp.Size {
			t.Fatalf("x out of range: %f", b.X)
		}
		if b.Y > 0 || b.Y <= -SpawnHeight*u {
			t.Fatalf("y out of range: %f", b.Y)
		}
		if b.VX < -SpawnSpeedX*u || b.VX >= SpawnSpeedX*u {
			t.Fatalf("vx out of range: %f", b.VX)
		}
		if b.VY < SpawnSpeedY*u || b.VY >= 2*SpawnSpeedY*u {
			t.Fatalf("vy out of range: %f", b.VY)
		}
	}
}
