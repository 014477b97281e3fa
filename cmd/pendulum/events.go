package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/core"
	"github.com/lixenwraith/pendulum/parameter"
)

// eventPump moves tcell events from the blocking poller onto a channel the main loop selects on
type eventPump struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newEventPump(screen tcell.Screen) *eventPump {
	return &eventPump{
		screen:  screen,
		eventCh: make(chan tcell.Event, parameter.EventChannelSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (p *eventPump) start() {
	core.Go(p.pollLoop)
}

// pollLoop reads input events until stop signal or screen teardown
func (p *eventPump) pollLoop() {
	defer close(p.doneCh)

	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case p.eventCh <- ev:
		case <-p.stopCh:
			return
		}
	}
}

// stop signals the poller and waits for it; the screen stays open
func (p *eventPump) stop() {
	close(p.stopCh)
	// Post synthetic interrupt to unblock PollEvent
	_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-p.doneCh
}

func (p *eventPump) events() <-chan tcell.Event {
	return p.eventCh
}
