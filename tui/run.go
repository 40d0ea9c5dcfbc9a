package tui

import (
	"context"
	"time"

	"cannonfootball/game"

	"github.com/gdamore/tcell/v2"
)

// maxFrameTime caps the simulated time of a single frame
const maxFrameTime = 100 * time.Millisecond

// RunOptions configures the terminal loop
type RunOptions struct {
	// Frame is the ticker period. Zero means the match's tick duration.
	Frame time.Duration

	// OnEvents receives the events of every tick and restart
	OnEvents func([]game.Event)
}

// Run drives m live in screen until ctx is cancelled or the user quits with
// q, Escape or Ctrl-C. r restarts a finished match.
func Run(ctx context.Context, screen tcell.Screen, m *game.Match, opts RunOptions) error {
	frame := opts.Frame
	if frame <= 0 {
		frame = m.Config().TickDuration()
	}
	onEvents := opts.OnEvents
	if onEvents == nil {
		onEvents = func([]game.Event) {}
	}

	renderer := NewRenderer()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && m.Over() {
					m.Restart()
					onEvents(m.Events())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxFrameTime {
				dt = maxFrameTime
			}
			m.Tick(ctx, dt)
			onEvents(m.Events())
			renderer.Draw(screen, m.Snapshot())
		}
	}
}
