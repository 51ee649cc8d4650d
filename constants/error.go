package constants

import "errors"

var (
	// ErrEmptyTickers ticker list has no symbol
	ErrEmptyTickers = errors.New("ticker list is empty")
)
