// Package raylib draws the board in a raylib window, the window may be
// backed by a framebuffer device such as a Raspberry Pi LCD.
package raylib

import (
	"context"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/nzai/tickerboard/screens"
	"go.uber.org/zap"
)

// raylib must be driven from the main thread
func init() {
	runtime.LockOSThread()

	screens.Register(screens.KindRaylib, func(options screens.Options) (screens.Screen, error) {
		return New(options.Width, options.Height, options.Title, options.Fullscreen), nil
	})
}

const waitFPS = 10

// Screen raylib window
type Screen struct {
	width  int32
	height int32
	frame  *screens.Frame
}

// New open a window of width x height
func New(width, height int32, title string, fullscreen bool) *Screen {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(waitFPS)
	rl.HideCursor()

	if fullscreen && !rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
	}

	screen := &Screen{
		width:  width,
		height: height,
		frame:  &screens.Frame{Background: screens.Black},
	}
	screen.draw()

	zap.L().Info("raylib window opened",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Bool("fullscreen", rl.IsWindowFullscreen()))

	return screen
}

// Size implements screens.Screen
func (s *Screen) Size() (int32, int32) {
	return s.width, s.height
}

// MeasureText implements screens.Screen
func (s *Screen) MeasureText(text string, fontSize int32) int32 {
	return rl.MeasureText(text, fontSize)
}

// Present implements screens.Screen
func (s *Screen) Present(frame *screens.Frame) error {
	if rl.WindowShouldClose() {
		return screens.ErrClosed
	}

	s.frame = frame
	s.draw()
	return nil
}

// Wait redraw the current frame at a low rate, every redraw polls keyboard input
func (s *Screen) Wait(ctx context.Context, d time.Duration) ([]screens.Event, error) {
	deadline := time.Now().Add(d)

	var events []screens.Event
	for {
		s.draw()

		if rl.WindowShouldClose() {
			return events, screens.ErrClosed
		}

		if rl.IsKeyPressed(rl.KeyF) {
			events = append(events, screens.EventToggleFullscreen)
		}

		if rl.IsKeyPressed(rl.KeyT) {
			events = append(events, screens.EventEditTickers)
		}

		if ctx.Err() != nil {
			return events, ctx.Err()
		}

		if !time.Now().Before(deadline) {
			return events, nil
		}
	}
}

// ToggleFullscreen implements screens.Screen
func (s *Screen) ToggleFullscreen() error {
	rl.ToggleFullscreen()
	zap.L().Info("raylib fullscreen toggled", zap.Bool("fullscreen", rl.IsWindowFullscreen()))
	return nil
}

// Close implements screens.Screen
func (s *Screen) Close() error {
	rl.CloseWindow()
	return nil
}

func (s *Screen) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(color(s.frame.Background))
	for _, text := range s.frame.Texts {
		rl.DrawText(text.Value, text.X, text.Y, text.Size, color(text.Color))
	}
	rl.EndDrawing()
}

func color(c screens.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
