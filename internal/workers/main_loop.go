// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-feed-client/internal/logger"
)

// ErrLoopStopped is returned by [MainLoop.Sync] once the loop has exited.
var ErrLoopStopped = errors.New("main loop stopped")

// MainLoop is the serialized execution context of the client. Tasks posted
// to it run one at a time, in posting order, on the goroutine that runs the
// loop. All session and paging state is mutated and published from there.
//
// The queue is unbounded, so Post never blocks and may be called from
// inside a running task.
type MainLoop struct {
	logger *logger.Logger

	mu      sync.Mutex
	queue   []func()
	stopped bool

	wake chan struct{}
	done chan struct{}
}

var _ Worker = (*MainLoop)(nil)

// NewMainLoop returns an idle loop. Tasks posted before Run are queued.
func NewMainLoop(log *logger.Logger) *MainLoop {
	return &MainLoop{
		logger: log,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Post queues fn. It reports false when the loop has already stopped and
// fn will never run.
func (l *MainLoop) Post(fn func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Sync posts fn and waits until it has run. It must not be called from
// inside a task.
func (l *MainLoop) Sync(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	if !l.Post(func() {
		defer close(ran)
		fn()
	}) {
		return ErrLoopStopped
	}

	select {
	case <-ran:
		return nil
	case <-l.done:
		select {
		case <-ran:
			return nil
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue until ctx is cancelled. Tasks still queued at that
// point are dropped.
func (l *MainLoop) Run(ctx context.Context) error {
	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.queue = nil
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		for {
			task, ok := l.next()
			if !ok {
				break
			}
			if ctx.Err() != nil {
				return nil
			}
			l.run(task)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// Done is closed once the loop has stopped.
func (l *MainLoop) Done() <-chan struct{} {
	return l.done
}

func (l *MainLoop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

func (l *MainLoop) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().
				Str("func", "MainLoop.run").
				Interface("panic", r).
				Msg("task panicked")
		}
	}()
	task()
}
