package sound

import (
	"io"
	"testing"
	"time"

	"cannonfootball/game"

	"github.com/charmbracelet/log"
)

func TestCues(t *testing.T) {
	for _, kind := range []game.EventKind{game.EventHit, game.EventGoal, game.EventGameOver} {
		tone, ok := Cues[kind]
		if !ok {
			t.Errorf("Expected a cue for %s", kind)
			continue
		}
		if tone.Freq <= 0 || tone.Duration <= 0 || tone.Duration > time.Second {
			t.Errorf("Unexpected cue for %s: %+v", kind, tone)
		}
	}
	if _, ok := Cues[game.EventFired]; ok {
		t.Error("Expected firing to be silent")
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := &Player{logger: log.New(io.Discard)}
	p.Play([]game.Event{{Kind: game.EventGoal}})
	p.Close()
	if p.Enabled() {
		t.Error("Expected disabled player")
	}
}
