package wordcloud

import (
	"context"
	"log/slog"
	"maps"
	"sync"
)

// Dispatcher runs fn on the goroutine that owns presentation state.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(fn func())

func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}

// Inline runs callbacks on whichever goroutine delivers them.
var Inline Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// MainQueue collects callbacks for the owning goroutine to run with Drain.
type MainQueue struct {
	ch chan func()
}

func NewMainQueue(size int) *MainQueue {
	return &MainQueue{ch: make(chan func(), size)}
}

func (q *MainQueue) Dispatch(fn func()) {
	q.ch <- fn
}

// Drain runs every queued callback without blocking and returns how many ran.
func (q *MainQueue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Outcome is what the last finished request left behind.
type Outcome struct {
	Image Image
	Err   error
}

// Screen is the state behind the word cloud view: the image on display.
// Requests are fire-and-forget. Each delivers one result through the
// dispatcher; a success replaces the image, a failure leaves it alone.
// When requests overlap, the one finishing last wins.
type Screen struct {
	generator  Generator
	dispatcher Dispatcher

	mu       sync.Mutex
	image    *Image
	last     *Outcome
	inFlight sync.WaitGroup
}

func NewScreen(generator Generator, dispatcher Dispatcher) *Screen {
	if dispatcher == nil {
		dispatcher = Inline
	}
	return &Screen{
		generator:  generator,
		dispatcher: dispatcher,
	}
}

// Request starts generating an image from scores and returns immediately.
func (s *Screen) Request(ctx context.Context, scores map[string]int) {
	scores = maps.Clone(scores)
	s.inFlight.Add(1)
	GenerateAsync(ctx, s.generator, scores, func(img Image, err error) {
		defer s.inFlight.Done()
		s.dispatcher.Dispatch(func() {
			s.apply(img, err)
		})
	})
}

func (s *Screen) apply(img Image, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &Outcome{Image: img, Err: err}
	if err != nil {
		slog.Default().Error("failed to generate a word cloud", "error", err)
		return
	}
	s.image = &img
}

// Wait blocks until every started request has handed its result to the dispatcher.
func (s *Screen) Wait() {
	s.inFlight.Wait()
}

// Current returns the displayed image, if any.
func (s *Screen) Current() (Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.image == nil {
		return Image{}, false
	}
	return *s.image, true
}

// LastOutcome returns the result of the most recently applied request.
func (s *Screen) LastOutcome() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return Outcome{}, false
	}
	return *s.last, true
}
