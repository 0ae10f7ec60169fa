package onboarding_test

//go:generate mockgen -source=events.go -destination=mocks/mocks.go -package=mocks Listener

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/atomic"
	"go.uber.org/mock/gomock"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/onboarding"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/onboarding/mocks"
)

const waitFor = time.Second

// recorder collects events delivered from any goroutine.
type recorder struct {
	mu     sync.Mutex
	events []onboarding.Event
}

func (r *recorder) OnOnboardingEvent(event onboarding.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) kinds() []onboarding.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]onboarding.EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(kind onboarding.EventKind) int {
	n := 0
	for _, k := range r.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

type ControllerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	listener *mocks.MockListener
	clock    *clock.Mock
	deck     *onboarding.Deck
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.listener = mocks.NewMockListener(s.ctrl)
	s.clock = clock.NewMock()
	s.deck = onboarding.DefaultDeck()
}

func (s *ControllerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ControllerSuite) newController(deck *onboarding.Deck) *onboarding.Controller {
	c, err := onboarding.NewController(deck, onboarding.WithClock(s.clock))
	s.Require().NoError(err)
	return c
}

func (s *ControllerSuite) TestNewController() {
	s.Run("nil deck rejected", func() {
		_, err := onboarding.NewController(nil)
		s.Require().ErrorIs(err, onboarding.ErrNilDeck)
	})

	s.Run("starts active on first slide", func() {
		c := s.newController(s.deck)
		s.Equal(0, c.CurrentIndex())
		s.Equal(onboarding.StateActive, c.State())
		s.False(c.Completed())
		s.False(c.TimerActive())
		s.False(c.ShouldNavigate())
		s.Equal(onboarding.DefaultInterval, c.Interval())
		s.Equal("Explore Destinations", c.CurrentSlide().Title)
	})

	s.Run("interval option", func() {
		c, err := onboarding.NewController(s.deck, onboarding.WithInterval(2*time.Second))
		s.Require().NoError(err)
		s.Equal(2*time.Second, c.Interval())

		c, err = onboarding.NewController(s.deck, onboarding.WithInterval(0))
		s.Require().NoError(err)
		s.Equal(onboarding.DefaultInterval, c.Interval())
	})
}

// Three manual advances walk 0 -> 1 -> 2 -> completed with one navigation.
func (s *ControllerSuite) TestManualWalkThroughDeck() {
	c := s.newController(s.deck)
	c.Subscribe(s.listener)

	gomock.InOrder(
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventSlideChanged, Index: 1, Trigger: onboarding.TriggerManual}),
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventSlideChanged, Index: 2, Trigger: onboarding.TriggerManual}),
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventNavigateToSignIn, Index: 2, Trigger: onboarding.TriggerManual}),
	)

	c.Advance()
	s.Equal(1, c.CurrentIndex())
	c.Advance()
	s.Equal(2, c.CurrentIndex())
	s.False(c.Completed())

	c.Advance()
	s.True(c.Completed())
	s.Equal(onboarding.StateCompleted, c.State())
	s.Equal(2, c.CurrentIndex())
	s.True(c.ShouldNavigate())

	// Terminal state: further advances publish nothing.
	c.Advance()
	c.Advance()
	s.Equal(2, c.CurrentIndex())
	s.Equal(onboarding.StateCompleted, c.State())
}

// A manual tap on the last slide must release the running timer before
// navigation fires.
func (s *ControllerSuite) TestManualCompletionReleasesTimer() {
	c := s.newController(s.deck)
	c.Subscribe(s.listener)

	gomock.InOrder(
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventSlideChanged, Index: 1, Trigger: onboarding.TriggerManual}),
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventSlideChanged, Index: 2, Trigger: onboarding.TriggerManual}),
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventTimerReleased, Index: 2, Trigger: onboarding.TriggerManual}),
		s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventNavigateToSignIn, Index: 2, Trigger: onboarding.TriggerManual}),
	)

	c.OnAppear()
	s.True(c.TimerActive())

	c.Advance()
	c.Advance()
	c.Advance()

	s.True(c.Completed())
	s.False(c.TimerActive())
	s.Equal(1, c.TimerReleases())

	// Teardown after completion does not release again.
	c.OnDisappear()
	s.Equal(1, c.TimerReleases())
}

func (s *ControllerSuite) TestTimerDrivenWalk() {
	c := s.newController(s.deck)
	events := &recorder{}
	c.Subscribe(events)

	c.OnAppear()

	for want := 1; want <= 2; want++ {
		s.clock.Add(onboarding.DefaultInterval)
		s.Require().Eventually(func() bool { return c.CurrentIndex() == want }, waitFor, time.Millisecond)
	}

	s.clock.Add(onboarding.DefaultInterval)
	s.Require().Eventually(c.Completed, waitFor, time.Millisecond)

	s.Equal([]onboarding.EventKind{
		onboarding.EventSlideChanged,
		onboarding.EventSlideChanged,
		onboarding.EventTimerReleased,
		onboarding.EventNavigateToSignIn,
	}, events.kinds())
	s.Equal(1, c.TimerReleases())
	s.False(c.TimerActive())

	// The released timer never fires again.
	s.clock.Add(10 * onboarding.DefaultInterval)
	s.Never(func() bool { return events.count(onboarding.EventNavigateToSignIn) > 1 }, 50*time.Millisecond, 5*time.Millisecond)

	events.mu.Lock()
	last := events.events[len(events.events)-1]
	events.mu.Unlock()
	s.Equal(onboarding.TriggerTimer, last.Trigger)
}

func (s *ControllerSuite) TestTimerDoesNotFireEarly() {
	c := s.newController(s.deck)
	c.OnAppear()
	defer c.OnDisappear()

	s.clock.Add(onboarding.DefaultInterval - time.Millisecond)
	s.Never(func() bool { return c.CurrentIndex() != 0 }, 30*time.Millisecond, 5*time.Millisecond)

	s.clock.Add(time.Millisecond)
	s.Eventually(func() bool { return c.CurrentIndex() == 1 }, waitFor, time.Millisecond)
}

// Appear then disappear immediately: timer released, no navigation.
func (s *ControllerSuite) TestTeardownBeforeCompletion() {
	c := s.newController(s.deck)
	c.Subscribe(s.listener)

	s.listener.EXPECT().OnOnboardingEvent(onboarding.Event{Kind: onboarding.EventTimerReleased, Index: 0, Trigger: onboarding.TriggerManual})

	c.OnAppear()
	c.OnDisappear()

	s.Equal(1, c.TimerReleases())
	s.False(c.TimerActive())
	s.Equal(0, c.CurrentIndex())
	s.Equal(onboarding.StateActive, c.State())
	s.False(c.ShouldNavigate())

	s.clock.Add(3 * onboarding.DefaultInterval)
	s.Never(func() bool { return c.CurrentIndex() != 0 }, 30*time.Millisecond, 5*time.Millisecond)

	// Second teardown is a no-op.
	c.OnDisappear()
	s.Equal(1, c.TimerReleases())
}

func (s *ControllerSuite) TestSecondStartIgnored() {
	c := s.newController(s.deck)
	c.OnAppear()
	c.OnAppear()
	defer c.OnDisappear()

	s.clock.Add(onboarding.DefaultInterval)
	s.Require().Eventually(func() bool { return c.CurrentIndex() == 1 }, waitFor, time.Millisecond)
	s.Never(func() bool { return c.CurrentIndex() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func (s *ControllerSuite) TestAppearAfterCompletionDoesNotStartTimer() {
	c := s.newController(s.deck)
	for i := 0; i < s.deck.Count(); i++ {
		c.Advance()
	}
	s.Require().True(c.Completed())

	c.OnAppear()
	s.False(c.TimerActive())
	s.Equal(0, c.TimerReleases())
}

func (s *ControllerSuite) TestConsumeNavigationOnce() {
	c := s.newController(s.deck)
	s.False(c.ConsumeNavigation())

	for i := 0; i < s.deck.Count(); i++ {
		c.Advance()
	}

	s.True(c.ConsumeNavigation())
	s.False(c.ConsumeNavigation())
	s.False(c.ShouldNavigate())

	c.Advance()
	s.False(c.ConsumeNavigation())
}

func (s *ControllerSuite) TestUnsubscribe() {
	c := s.newController(s.deck)
	events := &recorder{}
	unsubscribe := c.Subscribe(events)

	c.Advance()
	unsubscribe()
	unsubscribe()
	c.Advance()

	s.Equal([]onboarding.EventKind{onboarding.EventSlideChanged}, events.kinds())
}

func (s *ControllerSuite) TestListenerMayReadState() {
	c := s.newController(s.deck)
	var seen []int
	c.Subscribe(onboarding.ListenerFunc(func(e onboarding.Event) {
		seen = append(seen, c.CurrentIndex())
		if e.Kind == onboarding.EventNavigateToSignIn {
			s.True(c.Completed())
			s.True(c.ShouldNavigate())
		}
	}))

	for i := 0; i < s.deck.Count(); i++ {
		c.Advance()
	}
	s.Equal([]int{1, 2, 2}, seen)
}

func TestAdvanceCountsForAnyDeckSize(t *testing.T) {
	for count := 1; count <= 6; count++ {
		t.Run(fmt.Sprintf("%d slides", count), func(t *testing.T) {
			slides := make([]onboarding.Slide, count)
			for i := range slides {
				slides[i] = onboarding.NewSlide("", fmt.Sprintf("Slide %d", i), "")
			}
			deck, err := onboarding.NewDeck(slides...)
			require.NoError(t, err)

			c, err := onboarding.NewController(deck, onboarding.WithClock(clock.NewMock()))
			require.NoError(t, err)

			events := &recorder{}
			c.Subscribe(events)

			previous := c.CurrentIndex()
			activeAdvances := 0
			for !c.Completed() {
				c.Advance()
				if !c.Completed() {
					activeAdvances++
					require.Equal(t, previous+1, c.CurrentIndex())
					previous = c.CurrentIndex()
				}
			}

			require.Equal(t, count-1, activeAdvances)
			require.Equal(t, count-1, events.count(onboarding.EventSlideChanged))
			require.Equal(t, 1, events.count(onboarding.EventNavigateToSignIn))
			require.Equal(t, count-1, c.CurrentIndex())
		})
	}
}

func TestConcurrentAdvanceNavigatesOnce(t *testing.T) {
	c, err := onboarding.NewController(onboarding.DefaultDeck(), onboarding.WithClock(clock.NewMock()))
	require.NoError(t, err)

	navigations := atomic.NewInt32(0)
	c.Subscribe(onboarding.ListenerFunc(func(e onboarding.Event) {
		if e.Kind == onboarding.EventNavigateToSignIn {
			navigations.Inc()
		}
	}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance()
		}()
	}
	wg.Wait()

	require.True(t, c.Completed())
	require.Equal(t, int32(1), navigations.Load())
	require.Equal(t, 2, c.CurrentIndex())
}
