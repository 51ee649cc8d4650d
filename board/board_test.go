package board

import (
	"context"
	"errors"
	"time"

	"github.com/nzai/tickerboard/notifiers"
	"github.com/nzai/tickerboard/screens"
)

// fakeScreen record presented frames and replay input events
type fakeScreen struct {
	width   int32
	height  int32
	frames  []*screens.Frame
	waits   []time.Duration
	events  [][]screens.Event
	onWait  func(call int) error
	toggles int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{width: 800, height: 400}
}

func (f *fakeScreen) Size() (int32, int32) { return f.width, f.height }

func (f *fakeScreen) MeasureText(text string, fontSize int32) int32 {
	return int32(len(text)) * fontSize / 4
}

func (f *fakeScreen) Present(frame *screens.Frame) error {
	f.frames = append(f.frames, frame)
	return nil
}

func (f *fakeScreen) Wait(ctx context.Context, d time.Duration) ([]screens.Event, error) {
	call := len(f.waits)
	f.waits = append(f.waits, d)

	var events []screens.Event
	if call < len(f.events) {
		events = f.events[call]
	}

	if f.onWait != nil {
		err := f.onWait(call)
		if err != nil {
			return events, err
		}
	}

	return events, ctx.Err()
}

func (f *fakeScreen) ToggleFullscreen() error {
	f.toggles++
	return nil
}

func (f *fakeScreen) Close() error { return nil }

func (f *fakeScreen) lastFrame() *screens.Frame {
	if len(f.frames) == 0 {
		return nil
	}
	return f.frames[len(f.frames)-1]
}

// fakePrompter answer immediately after a question was asked
type fakePrompter struct {
	questions []string
	answer    string
	pending   bool
}

func (p *fakePrompter) Request(question string) bool {
	if p.pending {
		return false
	}

	p.pending = true
	p.questions = append(p.questions, question)
	return true
}

func (p *fakePrompter) Poll() (string, bool) {
	if !p.pending {
		return "", false
	}

	p.pending = false
	return p.answer, true
}

type fakeNotifier struct {
	results []*notifiers.CycleResult
	closed  bool
}

func (n *fakeNotifier) Notify(result *notifiers.CycleResult) {
	n.results = append(n.results, result)
}

func (n *fakeNotifier) Close() { n.closed = true }

var errBoom = errors.New("boom")
