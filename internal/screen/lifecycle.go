package screen

import (
	"context"
	"fmt"
	"sync"

	"animalsctl/internal/api"
	"animalsctl/pkg/logging"
)

const subsystem = "Screen"

// lifecycle is the state machine shared by all controllers. The mutex guards
// state against the render goroutine reading it while Apply runs.
type lifecycle[T any] struct {
	screen     ID
	failPrefix string
	isEmpty    func(T) bool

	mu         sync.Mutex
	state      State[T]
	generation uint64
	// cancel is non-nil while a fetch of the current generation is pending.
	cancel context.CancelFunc
}

func newLifecycle[T any](screen ID, failPrefix string, isEmpty func(T) bool) *lifecycle[T] {
	return &lifecycle[T]{
		screen:     screen,
		failPrefix: failPrefix,
		isEmpty:    isEmpty,
		state:      State[T]{Phase: PhaseLoading},
	}
}

// Screen identifies which screen the controller drives.
func (l *lifecycle[T]) Screen() ID { return l.screen }

// State returns the current snapshot.
func (l *lifecycle[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Phase returns the current phase.
func (l *lifecycle[T]) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Phase
}

// Leave cancels the pending fetch, if any. Its result will be dropped.
func (l *lifecycle[T]) Leave() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		logging.Debug(subsystem, "%s left with a fetch in flight, cancelling", l.screen)
		l.cancel()
		l.cancel = nil
	}
}

// fetch starts a new generation and wraps do into a Fetch bound to it.
func (l *lifecycle[T]) fetch(ctx context.Context, do func(ctx context.Context) (T, error)) Fetch {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	generation := l.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = State[T]{Phase: PhaseLoading}
	l.mu.Unlock()

	logging.Debug(subsystem, "%s activated (generation %d)", l.screen, generation)

	return func() Result {
		data, err := do(fetchCtx)
		return Result{Screen: l.screen, Generation: generation, Data: data, Err: err}
	}
}

// invalidate moves straight to PhaseInvalidReference without fetching.
func (l *lifecycle[T]) invalidate(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
	l.state = State[T]{
		Phase:   PhaseInvalidReference,
		Message: message,
		Kind:    api.KindInvalidReference,
		Err:     api.ErrInvalidReference,
	}
	logging.Warn(subsystem, "%s activated without an identifier", l.screen)
}

// Apply stores the result of the pending fetch. It returns false and leaves
// the state untouched when r is stale.
func (l *lifecycle[T]) Apply(r Result) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if r.Screen != l.screen || r.Generation != l.generation || l.cancel == nil {
		logging.Debug(subsystem, "%s dropped stale result (generation %d, current %d)", l.screen, r.Generation, l.generation)
		return false
	}
	l.cancel()
	l.cancel = nil

	if r.Err != nil {
		l.state = State[T]{
			Phase:   PhaseFailed,
			Message: fmt.Sprintf("%s: %v", l.failPrefix, r.Err),
			Kind:    api.KindOf(r.Err),
			Err:     r.Err,
		}
		logging.Error(subsystem, r.Err, "%s failed to load", l.screen)
		return true
	}

	data, ok := r.Data.(T)
	if !ok {
		err := fmt.Errorf("unexpected result type %T", r.Data)
		l.state = State[T]{
			Phase:   PhaseFailed,
			Message: fmt.Sprintf("%s: %v", l.failPrefix, err),
			Kind:    api.KindUnknown,
			Err:     err,
		}
		return true
	}
	l.state = State[T]{Phase: PhaseLoaded, Data: data}
	if l.isEmpty != nil {
		l.state.empty = l.isEmpty(data)
	}
	logging.Debug(subsystem, "%s loaded", l.screen)
	return true
}

// load runs one activation synchronously.
func load[T any](l *lifecycle[T], f Fetch) State[T] {
	if f != nil {
		l.Apply(f())
	}
	return l.State()
}
