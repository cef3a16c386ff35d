package game

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"ballattax/internal/audio"
	"ballattax/internal/gfx"
	"ballattax/internal/scene"
	"ballattax/internal/storage"
)

type GameState int

const (
	StatePlaying   GameState = iota
	StateLossDelay           // a ball was missed; restart pending
)

func (s GameState) String() string {
	if s == StateLossDelay {
		return "loss-delay"
	}
	return "playing"
}

// GameSession is the gameplay scene. Bodies holds the players first, then
// the balls. Coordinates are local to the square viewport.
type GameSession struct {
	scene.Base

	env      Env
	store    storage.Store
	sched    *audio.Scheduler
	switcher Switcher
	opts     Options
	rng      *rand.Rand
	bus      *EventBus

	ID         string
	State      GameState
	Viewport   Viewport
	Bodies     []*Body
	NumPlayers int
	Score      int
	HighScore  int
	Level      int
	Background gfx.RGBA

	delay float64
}

func NewSession(deps Deps) *GameSession {
	opts := deps.Options
	if opts.MaxVelocity <= 0 {
		opts.MaxVelocity = DefaultMaxVelocity
	}
	if opts.LossDelay < 0 {
		opts.LossDelay = DefaultLossDelay
	}
	s := &GameSession{
		env:      deps.Env,
		store:    deps.Store,
		sched:    deps.Sched,
		switcher: deps.Switcher,
		opts:     opts,
		rng:      newRand(opts.Seed),
		bus:      NewEventBus(),
	}
	AttachSoundCues(s.bus, s.sched, s.rng)
	return s
}

// Events exposes the gameplay event bus.
func (s *GameSession) Events() *EventBus { return s.bus }

// Players returns the player bodies.
func (s *GameSession) Players() []*Body { return s.Bodies[:s.NumPlayers] }

// Balls counts the live balls.
func (s *GameSession) Balls() int { return len(s.Bodies) - s.NumPlayers }

func (s *GameSession) Enter(args scene.Args) error {
	s.NumPlayers = args.PositiveInt("players", 1)
	w, h := s.env.Size()
	s.Viewport = FitViewport(w, h)
	if s.Viewport.Size <= 0 {
		return fmt.Errorf("window %dx%d has no room for a viewport", w, h)
	}
	s.env.SetClearColor(gfx.Palette.Black)
	s.HighScore = LoadHighScore(s.store)
	s.Restart()
	return nil
}

// Exit drops any sounds still queued so they do not play over the next scene.
func (s *GameSession) Exit() {
	s.sched.Clear()
}

// Restart records a new high score, then starts over from level one with
// every player at the centre.
func (s *GameSession) Restart() {
	s.recordHighScore()
	s.Score = 0
	s.Level = 0
	s.State = StatePlaying
	s.delay = 0

	c := s.Viewport.Size / 2
	s.Bodies = s.Bodies[:0]
	for i := 0; i < s.NumPlayers; i++ {
		s.Bodies = append(s.Bodies, NewPlayer(c, c, PlayerRadius*s.Viewport.Unit))
	}
	s.ID = uuid.NewString()
	slog.Info("session started", "id", s.ID, "players", s.NumPlayers, "highscore", s.HighScore)
	s.bus.Emit(Event{Type: EventRestart})
	s.NextLevel()
}

// NextLevel bumps the level, rolls a background and adds one ball per level.
func (s *GameSession) NextLevel() {
	s.Level++
	cfg := GetLevelConfig(s.Level, s.rng)
	s.Background = cfg.Background
	for i := 0; i < cfg.Balls; i++ {
		s.Bodies = append(s.Bodies, spawnBall(s.rng, s.Viewport))
	}
	slog.Debug("level up", "id", s.ID, "level", s.Level, "balls", cfg.Balls)
	s.bus.Emit(Event{Type: EventLevelUp, Data: s.Level})
}

// Quit leaves for the menu, keeping a new high score.
func (s *GameSession) Quit() error {
	s.recordHighScore()
	slog.Info("session ended", "id", s.ID, "score", s.Score, "level", s.Level)
	s.bus.Emit(Event{Type: EventQuit, Data: s.Score})
	return s.switcher.SwitchTo(SceneMenu, nil)
}

func (s *GameSession) recordHighScore() {
	if s.Score <= s.HighScore {
		return
	}
	s.HighScore = s.Score
	if err := SaveHighScore(s.store, s.HighScore); err != nil {
		slog.Error("saving high score", "err", err)
	}
}

func (s *GameSession) Update(dt float64, in scene.Inputs) (bool, error) {
	s.sched.Advance(dt)

	if s.State == StateLossDelay {
		s.delay -= dt
		if s.delay <= 0 {
			s.Restart()
		}
		return true, nil
	}

	for i, p := range s.Players() {
		if i >= in.Len() {
			break
		}
		dev := in.Device(i)
		if dev.Pressed(QuitButtonA) && dev.Pressed(QuitButtonB) {
			return true, s.Quit()
		}
		speed := s.opts.MaxVelocity * s.Viewport.Unit
		p.VX = dev.Axis(0) * speed
		p.VY = dev.Axis(1) * speed
	}
	for _, p := range s.Players() {
		p.Move(dt)
		s.Viewport.Clamp(p)
	}

	s.stepBodies(dt)
	return true, nil
}

// stepBodies walks the bodies from last to first. Each ball is moved and
// checked for leaving the field, then every body is collided against the
// ones before it.
func (s *GameSession) stepBodies(dt float64) {
	for i := len(s.Bodies) - 1; i >= 0; i-- {
		b := s.Bodies[i]
		if b.Kind == KindBall {
			res, bounced := stepBall(b, dt, s.Viewport.Size)
			if bounced && b.Y > b.Radius {
				s.bus.Emit(Event{Type: EventWallBounce, X: b.X, Y: b.Y, Pan: b.Pan(s.Viewport.Size)})
			}
			switch res {
			case ballSaved:
				s.save(i)
				continue
			case ballMissed:
				s.miss(b)
				return
			}
		}
		for j := 0; j < i; j++ {
			o := s.Bodies[j]
			if !b.Intersects(o) || !Collide(b, o) {
				continue
			}
			if b.Y > 0 && (b.Kind == KindBall || o.Kind == KindBall) {
				s.bus.Emit(Event{
					Type:     EventCollision,
					X:        b.X,
					Y:        b.Y,
					Pan:      b.Pan(s.Viewport.Size),
					BallPair: b.Kind == KindBall && o.Kind == KindBall,
				})
			}
		}
	}
}

func (s *GameSession) save(i int) {
	b := s.Bodies[i]
	s.Score++
	s.Bodies = slices.Delete(s.Bodies, i, i+1)
	s.bus.Emit(Event{Type: EventSave, X: b.X, Y: b.Y, Pan: b.Pan(s.Viewport.Size), Data: s.Score})
	if s.Balls() == 0 {
		s.NextLevel()
	}
}

func (s *GameSession) miss(b *Body) {
	s.State = StateLossDelay
	s.delay = s.opts.LossDelay
	slog.Info("ball missed", "id", s.ID, "score", s.Score, "level", s.Level)
	s.bus.Emit(Event{Type: EventMiss, X: b.X, Y: b.Y, Data: s.Score})
}

func (s *GameSession) Draw(sf gfx.Surface) {
	vp := s.Viewport
	u := vp.Unit

	sf.SetColor(s.Background)
	sf.FillRect(vp.OX, vp.OY, vp.Size, vp.Size)

	sf.SetColor(gfx.Palette.TitleTint)
	sf.FillText(vp.OX+vp.Size/2, vp.OY+vp.Size-u/2, "BALLATTAX", vp.Size/titleWidth, gfx.AlignCenter)

	sf.SetColor(gfx.Palette.HighScore)
	DrawNumber(sf, vp.OX+vp.Size/3-2.5*u, vp.OY+2*u, u, s.HighScore)
	sf.SetColor(gfx.Palette.Score)
	DrawNumber(sf, vp.OX+vp.Size*2/3-2.5*u, vp.OY+2*u, u, s.Score)

	for _, b := range s.Bodies {
		if b.Kind == KindNone {
			continue
		}
		x, y := vp.ToScreen(b.X, b.Y)
		sf.SetColor(b.Color)
		sf.FillCircle(x, y, b.Radius)
	}
}

// titleWidth is the viewport-to-text-scale divisor for the watermark title.
const titleWidth = 100.0
