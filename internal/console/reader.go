package console

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type scannedLine struct {
	text string
	err  error
}

// LineReader hands out console lines one at a time. Every prompt and every
// human seat must share one reader, otherwise buffered input gets lost.
type LineReader struct {
	scanner *bufio.Scanner
	lines   chan scannedLine
	once    sync.Once
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		scanner: bufio.NewScanner(r),
		lines:   make(chan scannedLine),
	}
}

// ReadLine blocks until a line is available or ctx is done. It returns
// io.EOF once the input is exhausted.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	l.once.Do(func() {
		go l.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

func (l *LineReader) scan() {
	defer close(l.lines)
	for l.scanner.Scan() {
		l.lines <- scannedLine{text: l.scanner.Text()}
	}
	if err := l.scanner.Err(); err != nil {
		l.lines <- scannedLine{err: err}
	}
}
