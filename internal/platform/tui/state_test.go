package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestStateFeedKeepsLatest(t *testing.T) {
	f := &stateFeed{ch: make(chan snake.State, 1), unsubscribe: func() {}}

	for score := 0; score < 3; score++ {
		f.push(snake.State{Score: score})
	}

	msg := f.wait()()
	got, ok := msg.(StateMsg)
	if !ok {
		t.Fatalf("wait() returned %T, expected StateMsg", msg)
	}
	if got.Score != 2 {
		t.Errorf("Score = %d, expected latest state (2)", got.Score)
	}
}

func TestStateFeedClose(t *testing.T) {
	unsubscribed := 0
	f := &stateFeed{ch: make(chan snake.State, 1), unsubscribe: func() { unsubscribed++ }}

	f.close()
	f.close()

	if unsubscribed != 1 {
		t.Errorf("unsubscribe called %d times, expected 1", unsubscribed)
	}
	if msg := f.wait()(); msg != nil {
		t.Errorf("wait() after close = %v, expected nil", msg)
	}
}
