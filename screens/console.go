package screens

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Console headless screen, print frames as colored text lines
type Console struct {
	writer     io.Writer
	width      int32
	height     int32
	fullscreen bool
}

// NewConsole create console screen
func NewConsole(writer io.Writer, width, height int32) *Console {
	return &Console{writer: writer, width: width, height: height}
}

// Size implements Screen
func (c *Console) Size() (int32, int32) {
	return c.width, c.height
}

// MeasureText approximate a glyph as half of the font size
func (c *Console) MeasureText(text string, fontSize int32) int32 {
	return int32(utf8.RuneCountInString(text)) * fontSize / 2
}

// Present print texts line by line, texts on the same line are ordered by x
func (c *Console) Present(frame *Frame) error {
	texts := make([]Text, len(frame.Texts))
	copy(texts, frame.Texts)
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y < texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var sb strings.Builder
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	for index, text := range texts {
		if index > 0 {
			if texts[index-1].Y == text.Y {
				sb.WriteString("  ")
			} else {
				sb.WriteString("\n")
			}
		}

		sb.WriteString(Colorize(text.Value, text.Color))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(c.writer, sb.String())
	return err
}

// Wait sleep for d, console reads no keyboard input
func (c *Console) Wait(ctx context.Context, d time.Duration) ([]Event, error) {
	if d <= 0 {
		return nil, ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	}
}

// ToggleFullscreen only tracks the flag
func (c *Console) ToggleFullscreen() error {
	c.fullscreen = !c.fullscreen
	zap.L().Info("console screen fullscreen toggled", zap.Bool("fullscreen", c.fullscreen))
	return nil
}

// Close implements Screen
func (c *Console) Close() error {
	return nil
}

// Colorize wrap s in a 24-bit ANSI foreground color
func Colorize(s string, color Color) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", color.R, color.G, color.B, s)
}
