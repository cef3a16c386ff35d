package game

import (
	"golang.org/x/exp/rand"

	"ballattax/internal/audio"
)

// Cue pitches and envelopes.
const (
	bounceBase   = 220.0
	ballBallBase = 880.0
	playerBase   = 110.0
	saveBase     = 880.0
	missFreq     = 55.0
)

// SoundCues turns gameplay events into beeps on the scheduler.
type SoundCues struct {
	sched *audio.Scheduler
	rng   *rand.Rand
}

// AttachSoundCues subscribes a SoundCues to every audible event on bus.
func AttachSoundCues(bus *EventBus, sched *audio.Scheduler, rng *rand.Rand) *SoundCues {
	c := &SoundCues{sched: sched, rng: rng}
	bus.Subscribe(EventWallBounce, c.wallBounce)
	bus.Subscribe(EventCollision, c.collision)
	bus.Subscribe(EventSave, c.save)
	bus.Subscribe(EventMiss, c.miss)
	return c
}

func (c *SoundCues) wallBounce(e Event) {
	c.sched.PlayNow(audio.RandFreq(c.rng, bounceBase, -2, 2), 0.015, 0.3, audio.DefaultTimbre, e.Pan)
}

func (c *SoundCues) collision(e Event) {
	if e.BallPair {
		c.sched.PlayNow(audio.RandFreq(c.rng, ballBallBase, -3, 3), 0.015, 0.2, audio.DefaultTimbre, e.Pan)
		return
	}
	c.sched.PlayNow(audio.RandFreq(c.rng, playerBase, -1, 3), 0.025, 0.3, audio.DefaultTimbre, e.Pan)
}

// save plays a rising two-note chime; the second note inherits everything
// but pitch from the first.
func (c *SoundCues) save(e Event) {
	c.sched.Schedule(
		audio.N().Freq(saveBase).Dur(0.05).Vol(0.1).Timbre(audio.DefaultTimbre).Pan(e.Pan),
		audio.N().Freq(saveBase*2).After(0.05),
	)
}

func (c *SoundCues) miss(Event) {
	c.sched.PlayNow(missFreq, 0.5, 0.3, 0.5, 0)
}
