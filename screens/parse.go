package screens

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
)

const (
	// KindRaylib draw in a raylib window, registered by the screens/raylib package
	KindRaylib = "raylib"
	// KindConsole print frames to a writer
	KindConsole = "console"
)

// Options screen size and backend settings
type Options struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	// Writer of the console screen, stdout when nil
	Writer io.Writer
}

// Opener open a screen backend
type Opener func(Options) (Screen, error)

var (
	openersMutex sync.RWMutex
	openers      = map[string]Opener{
		KindConsole: func(options Options) (Screen, error) {
			writer := options.Writer
			if writer == nil {
				writer = os.Stdout
			}

			return NewConsole(writer, options.Width, options.Height), nil
		},
	}
)

// Register make a screen backend available to Parse
func Register(kind string, opener Opener) {
	openersMutex.Lock()
	defer openersMutex.Unlock()

	openers[kind] = opener
}

// Kinds registered backend names, sorted
func Kinds() []string {
	openersMutex.RLock()
	defer openersMutex.RUnlock()

	kinds := make([]string, 0, len(openers))
	for kind := range openers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	return kinds
}

// Parse open the screen backend named kind
func Parse(kind string, options Options) (Screen, error) {
	openersMutex.RLock()
	opener, found := openers[kind]
	openersMutex.RUnlock()

	if !found {
		zap.L().Error("screen type invalid", zap.String("type", kind), zap.Strings("registered", Kinds()))
		return nil, fmt.Errorf("screen type invalid: %s", kind)
	}

	return opener(options)
}
