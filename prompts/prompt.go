package prompts

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

type reply struct {
	line string
	err  error
}

// Prompter ask a question and read the answer line in background,
// Request and Poll must be called from the same goroutine
type Prompter struct {
	reader  *bufio.Reader
	writer  io.Writer
	pending bool
	replies chan reply
}

// New create prompter reading answers from r and writing questions to w
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader:  bufio.NewReader(r),
		writer:  w,
		replies: make(chan reply, 1),
	}
}

// Pending a question is waiting for its answer
func (p *Prompter) Pending() bool {
	return p.pending
}

// Request print question and start reading the answer, return false if a question is already pending
func (p *Prompter) Request(question string) bool {
	if p.pending {
		return false
	}
	p.pending = true

	fmt.Fprint(p.writer, question)
	go func() {
		line, err := p.reader.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}

		p.replies <- reply{line: strings.TrimRight(line, "\r\n"), err: err}
	}()

	return true
}

// Poll return the answer if it arrived, never blocks
func (p *Prompter) Poll() (string, bool) {
	select {
	case r := <-p.replies:
		p.pending = false
		if r.err != nil {
			zap.L().Warn("read prompt answer failed", zap.Error(r.err))
			return "", false
		}

		return r.line, true
	default:
		return "", false
	}
}
