package output

import (
	"fmt"
	"time"
)

const progressTick = 100 * time.Millisecond

// Progress counts bytes written through it and, on a terminal, redraws a
// single status line for the transfer.
type Progress struct {
	name    string
	total   int64
	written int64
	live    bool
	start   time.Time
	drawn   time.Time
}

func NewProgress(name string, total int64) *Progress {
	return &Progress{
		name:  name,
		total: total,
		live:  isTerminal(),
		start: time.Now(),
	}
}

func (p *Progress) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.live && time.Since(p.drawn) >= progressTick {
		p.draw()
		p.drawn = time.Now()
	}
	return len(b), nil
}

func (p *Progress) Written() int64 {
	return p.written
}

// Finish clears the live line so the next status line starts clean.
func (p *Progress) Finish() {
	if p.live {
		fmt.Print("\r\033[K")
	}
}

func (p *Progress) line() string {
	elapsed := time.Since(p.start).Seconds()
	text := fmt.Sprintf("  %s %s %s %s", p.name, StyleSymbols["arrow"], FormatBytes(uint64(p.written)), FormatSpeed(p.written, elapsed))
	if p.total > 0 {
		text = "  " + ProgressBar(p.written, p.total, 30) + text
	}
	if runes := []rune(text); len(runes) > getTerminalWidth() {
		text = string(runes[:getTerminalWidth()])
	}
	return text
}

func (p *Progress) draw() {
	fmt.Print("\r\033[K" + FDebug(p.line()))
}
