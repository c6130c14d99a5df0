package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionPause, 0, false},
		{ActionNone, 0, false},
		{ActionQuit, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			got, ok := tt.action.Direction()
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Direction() = (%v, %v), expected (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
