package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns a readable gesture name
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType, fyne.Position)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	touchEndPos    fyne.Position
	now            func() time.Time

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler. The callback receives the
// position where the touch started.
func NewGestureHandler(onGesture func(GestureType, fyne.Position)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	gh.touchEndPos = event.Position
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	// Calculate movement distance
	dx := gh.touchEndPos.X - gh.touchStartPos.X
	dy := gh.touchEndPos.Y - gh.touchStartPos.Y
	distanceSq := dx*dx + dy*dy
	moved := distanceSq >= gh.swipeThreshold*gh.swipeThreshold

	// Detect gesture type
	switch {
	case moved:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	// Reset tracking
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	// Determine primary direction
	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
	} else {
		if dy > 0 {
			gh.triggerGesture(GestureSwipeDown)
		} else {
			gh.triggerGesture(GestureSwipeUp)
		}
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture, gh.touchStartPos)
	}
}
