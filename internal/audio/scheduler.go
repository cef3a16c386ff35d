package audio

import "log/slog"

// Beeper plays a note immediately. *Synth implements it.
type Beeper interface {
	Beep(freq, duration, volume, timbre, pan float64)
}

// Note is a pending note. Delay is the time left before it fires.
type Note struct {
	Freq     float64
	Duration float64
	Volume   float64
	Timbre   float64
	Pan      float64
	Delay    float64
}

type specField uint8

const (
	fieldFreq specField = 1 << iota
	fieldDuration
	fieldVolume
	fieldTimbre
	fieldPan
	fieldDelay
)

// NoteSpec describes one note of a Schedule call. Fields left unset inherit
// the last value given by an earlier spec in the same call.
type NoteSpec struct {
	set      specField
	freq     float64
	duration float64
	volume   float64
	timbre   float64
	pan      float64
	delay    float64
}

// N starts an empty note spec.
func N() NoteSpec { return NoteSpec{} }

func (n NoteSpec) Freq(hz float64) NoteSpec {
	n.freq = hz
	n.set |= fieldFreq
	return n
}

func (n NoteSpec) Dur(seconds float64) NoteSpec {
	n.duration = seconds
	n.set |= fieldDuration
	return n
}

func (n NoteSpec) Vol(v float64) NoteSpec {
	n.volume = v
	n.set |= fieldVolume
	return n
}

func (n NoteSpec) Timbre(duty float64) NoteSpec {
	n.timbre = duty
	n.set |= fieldTimbre
	return n
}

func (n NoteSpec) Pan(p float64) NoteSpec {
	n.pan = p
	n.set |= fieldPan
	return n
}

// After adds an explicit delay on top of the running offset.
func (n NoteSpec) After(seconds float64) NoteSpec {
	n.delay = seconds
	n.set |= fieldDelay
	return n
}

func (n NoteSpec) has(f specField) bool { return n.set&f != 0 }

// Scheduler queues notes and fires them through a Beeper once their delay
// has elapsed. It is driven by Advance from the frame loop.
type Scheduler struct {
	out     Beeper
	pending []Note
}

func NewScheduler(out Beeper) *Scheduler {
	return &Scheduler{out: out}
}

// Pending returns a copy of the queued notes in insertion order.
func (s *Scheduler) Pending() []Note {
	return append([]Note(nil), s.pending...)
}

// Clear drops every queued note.
func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
}

// Schedule queues specs left to right. Each spec starts where the previous
// one ended: its delay is its own After value plus the running offset, and
// the running offset then grows by its duration. Specs that resolve to a
// non-positive frequency, duration or volume are dropped.
func (s *Scheduler) Schedule(specs ...NoteSpec) {
	var freq, duration, volume, pan, offset float64
	timbre := DefaultTimbre
	for _, spec := range specs {
		if spec.has(fieldFreq) {
			freq = spec.freq
		}
		if spec.has(fieldDuration) {
			duration = spec.duration
		}
		if spec.has(fieldVolume) {
			volume = spec.volume
		}
		if spec.has(fieldTimbre) {
			timbre = spec.timbre
		}
		if spec.has(fieldPan) {
			pan = spec.pan
		}
		delay := offset
		if spec.has(fieldDelay) {
			delay += spec.delay
		}
		if freq > 0 && duration > 0 && volume > 0 {
			s.pending = append(s.pending, Note{
				Freq:     freq,
				Duration: duration,
				Volume:   volume,
				Timbre:   timbre,
				Pan:      pan,
				Delay:    delay,
			})
		} else {
			slog.Debug("ignoring note", "freq", freq, "duration", duration, "volume", volume)
		}
		offset = delay + duration
	}
}

// Advance counts every pending note down by dt and fires, in insertion order,
// each note whose delay reached zero.
func (s *Scheduler) Advance(dt float64) {
	kept := s.pending[:0]
	var due []Note
	for _, n := range s.pending {
		n.Delay -= dt
		if n.Delay <= 0 {
			due = append(due, n)
			continue
		}
		kept = append(kept, n)
	}
	s.pending = kept
	for _, n := range due {
		s.out.Beep(n.Freq, n.Duration, n.Volume, n.Timbre, n.Pan)
	}
}

// PlayNow bypasses the queue.
func (s *Scheduler) PlayNow(freq, duration, volume, timbre, pan float64) {
	s.out.Beep(freq, duration, volume, timbre, pan)
}
