package constants

import "time"

const (
	// CycleInterval define sleep between two board cycles
	CycleInterval = time.Second * 60
	// FailureDelay define pause after a ticker fetch failed
	FailureDelay = time.Second * 20
	// YahooBaseURL define quote page host
	YahooBaseURL = "https://finance.yahoo.com"
	// BrowserUserAgent mimic a desktop browser
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

	// ScreenWidth define canvas width
	ScreenWidth = 800
	// ScreenHeight define canvas height
	ScreenHeight = 400
	// FontSize define text size of every row
	FontSize = 40
	// RowPitch define vertical distance between rows
	RowPitch = 70
	// SymbolColumn define horizontal offset of the quote text from the symbol
	SymbolColumn = 200
	// ErrorTextX define error message position
	ErrorTextX = 10
	// ErrorTextY define error message position
	ErrorTextY = 180
	// ErrorText define text shown when the board stopped on error
	ErrorText = "ERROR..."
)

// DefaultTickers define tickers shown when nothing is configured
var DefaultTickers = []string{"RKLB", "ASTS", "SPY", "QQQ", "NVDA", "GME"}
