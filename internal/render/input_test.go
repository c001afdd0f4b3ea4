package render

import (
	"reflect"
	"testing"

	"github.com/opd-ai/go-horseshoe/internal/slider"
)

// scriptedInput replays a fixed list of samples, then repeats the last one.
type scriptedInput struct {
	states []InputState
	i      int
}

func (s *scriptedInput) Poll() InputState {
	if len(s.states) == 0 {
		return InputState{}
	}
	st := s.states[s.i]
	if s.i < len(s.states)-1 {
		s.i++
	}
	return st
}

func TestPointerTracker(t *testing.T) {
	tests := []struct {
		name   string
		states []InputState
		want   []slider.PointerEvent
	}{
		{
			name:   "idle",
			states: []InputState{{X: 1, Y: 1}, {X: 5, Y: 5}},
			want:   nil,
		},
		{
			name: "click",
			states: []InputState{
				{Pressed: true, X: 10, Y: 20},
				{Pressed: false, X: 10, Y: 20},
			},
			want: []slider.PointerEvent{slider.Down(10, 20), slider.Up(10, 20)},
		},
		{
			name: "drag skips stationary ticks",
			states: []InputState{
				{Pressed: true, X: 10, Y: 20},
				{Pressed: true, X: 10, Y: 20},
				{Pressed: true, X: 12, Y: 21},
				{Pressed: true, X: 12, Y: 21},
				{Pressed: true, X: 15, Y: 25},
				{Pressed: false, X: 16, Y: 25},
			},
			want: []slider.PointerEvent{
				slider.Down(10, 20),
				slider.Move(12, 21),
				slider.Move(15, 25),
				slider.Up(16, 25),
			},
		},
		{
			name:   "hover is not a move",
			states: []InputState{{X: 1, Y: 1}, {X: 2, Y: 2}, {Pressed: true, X: 2, Y: 2}},
			want:   []slider.PointerEvent{slider.Down(2, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := NewPointerTracker(&scriptedInput{states: tt.states})
			var got []slider.PointerEvent
			for range tt.states {
				got = pt.Poll(got)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointerTrackerPressed(t *testing.T) {
	pt := NewPointerTracker(&scriptedInput{states: []InputState{{Pressed: true}, {}}})
	pt.Poll(nil)
	if !pt.Pressed() {
		t.Error("Pressed() = false after a press")
	}
	pt.Poll(nil)
	if pt.Pressed() {
		t.Error("Pressed() = true after release")
	}
}
