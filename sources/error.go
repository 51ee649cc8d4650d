package sources

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork request failed or response status is not ok
	ErrNetwork = errors.New("network error")
	// ErrMarkup expected element missing in quote page
	ErrMarkup = errors.New("markup error")
	// ErrFormat element text is not a number
	ErrFormat = errors.New("invalid number format")
)

// FetchError describe why a ticker quote could not be fetched
type FetchError struct {
	Symbol string
	// Field is the data field being parsed, empty for network errors
	Field string
	Err   error
}

func (e *FetchError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
	}

	return fmt.Sprintf("fetch %s: %s: %v", e.Symbol, e.Field, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
