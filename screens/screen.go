package screens

import (
	"context"
	"errors"
	"time"
)

// ErrClosed the user closed the screen
var ErrClosed = errors.New("screen closed")

// Color rgba color
type Color struct {
	R, G, B, A uint8
}

var (
	// Black background
	Black = Color{R: 0, G: 0, B: 0, A: 255}
	// White neutral text
	White = Color{R: 255, G: 255, B: 255, A: 255}
	// Green rising quote
	Green = Color{R: 0, G: 255, B: 0, A: 255}
	// Red falling quote
	Red = Color{R: 255, G: 0, B: 0, A: 255}
)

// Text a string drawn at a position
type Text struct {
	X     int32  `json:"x"`
	Y     int32  `json:"y"`
	Size  int32  `json:"size"`
	Value string `json:"value"`
	Color Color  `json:"color"`
}

// Frame a full screen image
type Frame struct {
	Background Color  `json:"background"`
	Texts      []Text `json:"texts"`
}

// Event user input
type Event int

const (
	// EventToggleFullscreen switch between window and full screen
	EventToggleFullscreen Event = iota + 1
	// EventEditTickers user asked to replace the ticker list
	EventEditTickers
)

func (e Event) String() string {
	switch e {
	case EventToggleFullscreen:
		return "toggle-fullscreen"
	case EventEditTickers:
		return "edit-tickers"
	default:
		return "unknown"
	}
}

// Screen define a drawing surface with keyboard input
type Screen interface {
	// Size canvas size in pixels
	Size() (width, height int32)
	// MeasureText width of text drawn with fontSize
	MeasureText(text string, fontSize int32) int32
	// Present replace the displayed frame
	Present(*Frame) error
	// Wait keep the current frame on screen for d and collect input events meanwhile
	Wait(ctx context.Context, d time.Duration) ([]Event, error)
	// ToggleFullscreen switch between window and full screen
	ToggleFullscreen() error
	// Close release the screen
	Close() error
}
