package device

import (
	"os"
	"os/signal"
	"sync"

	"afrimart/internal/domain/service"
)

// SignalForegroundNotifier reports "back in the foreground" when the process
// is resumed after a job-control stop, or when Resume is called.
type SignalForegroundNotifier struct {
	mu      sync.Mutex
	nextID  int
	fns     map[int]func()
	signals chan os.Signal
	done    chan struct{}
}

// NewSignalForegroundNotifier creates an idle notifier; signals are only
// watched while at least one subscription is open.
func NewSignalForegroundNotifier() *SignalForegroundNotifier {
	return &SignalForegroundNotifier{fns: make(map[int]func())}
}

// AsForegroundNotifier exposes the notifier as the domain ForegroundNotifier.
func AsForegroundNotifier(n *SignalForegroundNotifier) service.ForegroundNotifier {
	return n
}

func (n *SignalForegroundNotifier) Subscribe(fn func()) service.Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.fns[id] = fn

	if n.signals == nil && len(foregroundSignals) > 0 {
		n.signals = make(chan os.Signal, 1)
		n.done = make(chan struct{})
		signal.Notify(n.signals, foregroundSignals...)
		go n.watch(n.signals, n.done)
	}

	return &subscription{notifier: n, id: id}
}

// Resume delivers a foreground event to every subscriber, e.g. after the
// settings screen was closed.
func (n *SignalForegroundNotifier) Resume() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.fns))
	for _, fn := range n.fns {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (n *SignalForegroundNotifier) watch(signals <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-signals:
			n.Resume()
		}
	}
}

func (n *SignalForegroundNotifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.fns, id)

	if len(n.fns) == 0 && n.signals != nil {
		signal.Stop(n.signals)
		close(n.done)
		n.signals = nil
		n.done = nil
	}
}

type subscription struct {
	notifier *SignalForegroundNotifier
	id       int
	once     sync.Once
}

func (s *subscription) Close() {
	s.once.Do(func() {
		s.notifier.unsubscribe(s.id)
	})
}
