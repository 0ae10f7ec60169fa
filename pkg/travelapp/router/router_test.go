package router

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	screenFirst Screen = iota
	screenSecond
	screenMissing
)

func TestRunRequiresTransition(t *testing.T) {
	err := New().Register(screenFirst, func(any) (any, error) { return nil, nil }).Run(screenFirst, nil)
	require.ErrorIs(t, err, ErrNoTransition)
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := New().
		Name(screenMissing, "missing").
		Register(screenFirst, func(any) (any, error) { return nil, nil }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return screenMissing, nil })

	err := r.Run(screenFirst, nil)
	require.ErrorIs(t, err, ErrScreenNotRegistered)
	assert.Contains(t, err.Error(), "missing")
}

func TestRunWrapsScreenErrors(t *testing.T) {
	cause := errors.New("render failed")
	r := New().
		Register(screenFirst, func(any) (any, error) { return nil, cause }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) {
			t.Fatal("transition must not run after a screen error")
			return ScreenExit, nil
		})

	err := r.Run(screenFirst, nil)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "screen 0 error")
}

func TestRunPassesInputsAndResults(t *testing.T) {
	var inputs []any

	r := New()
	r.Register(screenFirst, func(input any) (any, error) {
		inputs = append(inputs, input)
		return "first-done", nil
	})
	r.Register(screenSecond, func(input any) (any, error) {
		inputs = append(inputs, input)
		return "second-done", nil
	})

	var results []any
	r.OnTransition(func(from Screen, result any, stack *Stack) (Screen, any) {
		results = append(results, result)
		if from == screenFirst {
			stack.Push(from, "first-input", "resume")
			return screenSecond, "second-input"
		}
		return ScreenExit, nil
	})

	require.NoError(t, r.Run(screenFirst, "first-input"))
	assert.Equal(t, []any{"first-input", "second-input"}, inputs)
	assert.Equal(t, []any{"first-done", "second-done"}, results)

	top := r.Stack().Peek()
	require.NotNil(t, top)
	assert.Equal(t, StackEntry{Screen: screenFirst, Input: "first-input", Resume: "resume"}, *top)
}

func TestRunLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := New(WithLogger(logger)).
		Name(screenFirst, "onboarding").
		Register(screenFirst, func(any) (any, error) { return nil, nil }).
		OnTransition(func(Screen, any, *Stack) (Screen, any) { return ScreenExit, nil })

	require.NoError(t, r.Run(screenFirst, nil))
	assert.Contains(t, buf.String(), `"from":"onboarding"`)
	assert.Contains(t, buf.String(), `"to":"exit"`)
}

func TestScreenName(t *testing.T) {
	r := New().Name(screenSecond, "sign_in")
	assert.Equal(t, "sign_in", r.ScreenName(screenSecond))
	assert.Equal(t, "screen 0", r.ScreenName(screenFirst))
	assert.Equal(t, "exit", r.ScreenName(ScreenExit))
}

func TestStack(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(screenFirst, 1, nil)
	s.Push(screenSecond, 2, "resume")
	assert.Equal(t, 2, s.Len())

	entries := s.Entries()
	entries[0].Input = 99
	assert.Equal(t, 1, s.Entries()[0].Input, "Entries returns a copy")

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, screenSecond, top.Screen)
	assert.Equal(t, "resume", top.Resume)

	s.Clear()
	assert.True(t, s.IsEmpty())
}
