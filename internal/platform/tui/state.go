// Package tui provides the Bubble Tea integration for the snake game.
// It maps keys to controller calls, draws published states, and hosts
// sessions over SSH.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// StateMsg carries a state published by the controller.
type StateMsg snake.State

// stateFeed connects a controller to a Bubble Tea program. The controller
// publishes into a one-slot mailbox that always holds the latest state, so
// a slow renderer skips frames instead of blocking the tick.
type stateFeed struct {
	ch          chan snake.State
	unsubscribe func()
	closeOnce   sync.Once
}

func newStateFeed(c *snake.Controller) *stateFeed {
	f := &stateFeed{ch: make(chan snake.State, 1)}
	f.unsubscribe = c.Subscribe(f.push)
	return f
}

// push runs under the controller lock, so it is the only sender.
func (f *stateFeed) push(s snake.State) {
	select {
	case f.ch <- s:
		return
	default:
	}
	// Replace the stale state nobody has read yet.
	select {
	case <-f.ch:
	default:
	}
	select {
	case f.ch <- s:
	default:
	}
}

// close detaches the feed. Pending waits return nil. Safe to call twice.
func (f *stateFeed) close() {
	f.closeOnce.Do(func() {
		f.unsubscribe()
		close(f.ch)
	})
}

// wait returns a command that delivers the next published state.
func (f *stateFeed) wait() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-f.ch
		if !ok {
			return nil
		}
		return StateMsg(s)
	}
}
