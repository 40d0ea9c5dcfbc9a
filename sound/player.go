package sound

import (
	"time"

	"cannonfootball/game"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine cue
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Cues maps match events to tones. Events without an entry are silent.
var Cues = map[game.EventKind]Tone{
	game.EventHit:       {Freq: 660, Duration: 40 * time.Millisecond},
	game.EventGoal:      {Freq: 880, Duration: 200 * time.Millisecond},
	game.EventStalemate: {Freq: 330, Duration: 200 * time.Millisecond},
	game.EventGameOver:  {Freq: 440, Duration: 400 * time.Millisecond},
}

// Player plays cues for match events on the system speaker
type Player struct {
	enabled bool
	logger  *log.Logger
}

// NewPlayer initialises the speaker. Audio is optional: on failure the
// player stays silent and the error is logged.
func NewPlayer(logger *log.Logger) *Player {
	p := &Player{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the match runs without sound
		logger.Warn("audio initialization failed", "err", err)
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether the speaker is available
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play queues the cues for events
func (p *Player) Play(events []game.Event) {
	if !p.enabled {
		return
	}
	for _, ev := range events {
		tone, ok := Cues[ev.Kind]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, tone.Freq)
		if err != nil {
			p.logger.Debug("tone generation failed", "freq", tone.Freq, "err", err)
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
	}
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
