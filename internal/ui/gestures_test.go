package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func touch(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from     fyne.Position
		to       fyne.Position
		held     time.Duration
		expected GestureType
	}{
		{name: "tap", from: fyne.NewPos(10, 10), to: fyne.NewPos(12, 11), held: 50 * time.Millisecond, expected: GestureTap},
		{name: "long press", from: fyne.NewPos(10, 10), to: fyne.NewPos(10, 10), held: time.Second, expected: GestureLongPress},
		{name: "swipe up", from: fyne.NewPos(10, 200), to: fyne.NewPos(15, 50), held: 100 * time.Millisecond, expected: GestureSwipeUp},
		{name: "swipe down", from: fyne.NewPos(10, 50), to: fyne.NewPos(15, 200), held: 100 * time.Millisecond, expected: GestureSwipeDown},
		{name: "swipe left", from: fyne.NewPos(200, 10), to: fyne.NewPos(20, 20), held: 100 * time.Millisecond, expected: GestureSwipeLeft},
		{name: "swipe right", from: fyne.NewPos(20, 10), to: fyne.NewPos(200, 20), held: 100 * time.Millisecond, expected: GestureSwipeRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []GestureType
			var at fyne.Position
			gh := NewGestureHandler(func(g GestureType, pos fyne.Position) {
				got = append(got, g)
				at = pos
			})

			now := time.Unix(0, 0)
			gh.now = func() time.Time { return now }
			gh.TouchDown(touch(tc.from.X, tc.from.Y))
			now = now.Add(tc.held)
			gh.TouchUp(touch(tc.to.X, tc.to.Y))

			if len(got) != 1 || got[0] != tc.expected {
				t.Fatalf("Expected %s, got %v", tc.expected, got)
			}
			if at != tc.from {
				t.Errorf("Expected gesture at %v, got %v", tc.from, at)
			}
		})
	}
}

func TestGestureHandlerCancel(t *testing.T) {
	called := false
	gh := NewGestureHandler(func(GestureType, fyne.Position) { called = true })

	gh.TouchDown(touch(10, 10))
	gh.TouchCancel(touch(10, 10))
	gh.TouchUp(touch(10, 10))

	if called {
		t.Error("Expected no gesture after cancel")
	}
}
