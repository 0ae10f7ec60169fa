package onboarding

import "sync"

// EventKind identifies what happened in the controller.
type EventKind int

const (
	EventSlideChanged     EventKind = iota // The active slide moved forward
	EventTimerReleased                     // The auto-advance timer was stopped
	EventNavigateToSignIn                  // Onboarding finished; leave for the sign-in screen
)

func (k EventKind) String() string {
	switch k {
	case EventSlideChanged:
		return "slide_changed"
	case EventTimerReleased:
		return "timer_released"
	case EventNavigateToSignIn:
		return "navigate_to_sign_in"
	default:
		return "unknown"
	}
}

// Trigger is the source of an advance.
type Trigger int

const (
	TriggerManual Trigger = iota // Button press or hardware key
	TriggerTimer                 // Auto-advance tick
)

func (t Trigger) String() string {
	if t == TriggerTimer {
		return "timer"
	}
	return "manual"
}

// Event is published to listeners on every observable controller change.
// Index is the active slide index after the change.
type Event struct {
	Kind    EventKind
	Index   int
	Trigger Trigger
}

// Listener receives controller events. Listeners are called synchronously
// while the controller holds its advance lock, so they must not call
// Advance, OnAppear or OnDisappear. Reading CurrentIndex, Completed or
// ShouldNavigate is safe.
type Listener interface {
	OnOnboardingEvent(event Event)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnOnboardingEvent(event Event) {
	f(event)
}

type listenerRegistry struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]Listener
	order     []uint64
}

func newListenerRegistry() *listenerRegistry {
	return &listenerRegistry{listeners: make(map[uint64]Listener)}
}

func (r *listenerRegistry) add(listener Listener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = listener
	r.order = append(r.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *listenerRegistry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.listeners, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// publish delivers event to listeners in subscription order.
func (r *listenerRegistry) publish(event Event) {
	r.mu.RLock()
	snapshot := make([]Listener, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.listeners[id])
	}
	r.mu.RUnlock()

	for _, listener := range snapshot {
		listener.OnOnboardingEvent(event)
	}
}
