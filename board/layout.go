package board

import "github.com/nzai/tickerboard/constants"

// Metrics define text size and spacing of board rows
type Metrics struct {
	FontSize     int32
	RowPitch     int32
	SymbolColumn int32
}

// DefaultMetrics fit six rows on an 800x400 screen
var DefaultMetrics = Metrics{
	FontSize:     constants.FontSize,
	RowPitch:     constants.RowPitch,
	SymbolColumn: constants.SymbolColumn,
}

// Layout position of the first row, other rows follow every RowPitch
type Layout struct {
	X       int32
	Y       int32
	Metrics Metrics
}

// NewLayout center rows on a width x height canvas.
// The block is centered vertically on the extent of the drawn text,
// horizontally on the symbol column plus the widest quote text.
// When the block is wider than the canvas it is aligned to the right edge.
func NewLayout(width, height int32, rows int, maxTextWidth int32, metrics Metrics) Layout {
	layout := Layout{Metrics: metrics}
	if rows == 0 {
		return layout
	}

	block := int32(rows-1)*metrics.RowPitch + metrics.FontSize
	layout.Y = (height - block) / 2
	if layout.Y < 0 {
		layout.Y = 0
	}

	total := maxTextWidth + metrics.SymbolColumn
	layout.X = (width - total) / 2
	if total > width {
		layout.X = width - total
	}

	return layout
}

// Row position of the symbol and the quote text of row index
func (l Layout) Row(index int) (symbolX, textX, y int32) {
	y = l.Y + int32(index)*l.Metrics.RowPitch
	return l.X, l.X + l.Metrics.SymbolColumn, y
}
