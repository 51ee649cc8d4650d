package board

import (
	"github.com/nzai/tickerboard/constants"
	"github.com/nzai/tickerboard/quotes"
	"github.com/nzai/tickerboard/screens"
)

// Render lay out rows on the screen, every row is drawn as a white symbol and a colored quote text
func Render(screen screens.Screen, rows []quotes.Row, metrics Metrics) *screens.Frame {
	width, height := screen.Size()

	var maxWidth int32
	for _, row := range rows {
		textWidth := screen.MeasureText(row.Text, metrics.FontSize)
		if textWidth > maxWidth {
			maxWidth = textWidth
		}
	}

	layout := NewLayout(width, height, len(rows), maxWidth, metrics)
	frame := &screens.Frame{
		Background: screens.Black,
		Texts:      make([]screens.Text, 0, len(rows)*2),
	}

	for index, row := range rows {
		symbolX, textX, y := layout.Row(index)
		frame.Texts = append(frame.Texts,
			screens.Text{X: symbolX, Y: y, Size: metrics.FontSize, Value: row.Symbol, Color: screens.White},
			screens.Text{X: textX, Y: y, Size: metrics.FontSize, Value: row.Text, Color: QuoteColor(row.Positive)},
		)
	}

	return frame
}

// QuoteColor green for non-negative change, red otherwise
func QuoteColor(positive bool) screens.Color {
	if positive {
		return screens.Green
	}

	return screens.Red
}

// ErrorFrame frame shown when the board stopped on error
func ErrorFrame(metrics Metrics) *screens.Frame {
	return &screens.Frame{
		Background: screens.Black,
		Texts: []screens.Text{
			{
				X:     constants.ErrorTextX,
				Y:     constants.ErrorTextY,
				Size:  metrics.FontSize,
				Value: constants.ErrorText,
				Color: screens.White,
			},
		},
	}
}
