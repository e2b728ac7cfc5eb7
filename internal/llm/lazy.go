package llm

import (
	"context"
	"errors"
	"io"
	"sync"
)

// ErrClosed is returned by a Lazy handle closed before first use.
var ErrClosed = errors.New("llm: generator closed")

// Lazy is a process-wide generator handle built on first use. The
// constructor runs at most once; its result, including an error, is
// shared by every later call.
type Lazy struct {
	once sync.Once
	init func() (Generator, error)
	gen  Generator
	err  error
}

func NewLazy(init func() (Generator, error)) *Lazy {
	return &Lazy{init: init}
}

func (l *Lazy) get() (Generator, error) {
	l.once.Do(func() {
		l.gen, l.err = l.init()
		if l.gen == nil && l.err == nil {
			l.err = errors.New("llm: provider constructor returned no generator")
		}
	})
	return l.gen, l.err
}

func (l *Lazy) Generate(ctx context.Context, req Request) (*Response, error) {
	gen, err := l.get()
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, req)
}

// Close releases the underlying client if it was ever built.
func (l *Lazy) Close() error {
	l.once.Do(func() {
		l.err = ErrClosed
	})
	if closer, ok := l.gen.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
