package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreatesEmptyCell(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Has("count"))
	assert.Nil(t, s.Get("count"))
	assert.True(t, s.Has("count"))
}

func TestHasDoesNotCreate(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Has("count"))
	assert.False(t, s.Has("count"))
}

func TestSetNotifiesInRegistrationOrder(t *testing.T) {
	s := NewStore()
	var order []string
	s.Subscribe("count", func(newV, oldV any) {
		order = append(order, "first")
		assert.Equal(t, 1, newV)
		assert.Nil(t, oldV)
	})
	s.Subscribe("count", func(newV, oldV any) {
		order = append(order, "second")
	})

	s.Set("count", 1)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSetIdenticalValueIsNoOp(t *testing.T) {
	s := NewStore()
	s.Set("count", 5)

	calls := 0
	s.Subscribe("count", func(newV, oldV any) { calls++ })

	s.Set("count", 5)
	assert.Equal(t, 0, calls)

	s.Set("count", 6)
	assert.Equal(t, 1, calls)
}

func TestUnsubscribe(t *testing.T) {
	s := NewStore()
	calls := 0
	unsub := s.Subscribe("count", func(newV, oldV any) { calls++ })

	s.Set("count", 1)
	require.Equal(t, 1, calls)

	unsub()
	s.Set("count", 2)
	assert.Equal(t, 1, calls)

	// Double unsubscribe is a no-op.
	unsub()
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	s := NewStore()
	var unsubSecond func()
	var got []string

	s.Subscribe("k", func(newV, oldV any) {
		got = append(got, "a")
		unsubSecond()
	})
	unsubSecond = s.Subscribe("k", func(newV, oldV any) {
		got = append(got, "b")
	})
	s.Subscribe("k", func(newV, oldV any) {
		got = append(got, "c")
	})

	s.Set("k", 1)
	// The unsubscribed callback is skipped; later ones still run.
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestSubscribersSeeConvergedValue(t *testing.T) {
	s := NewStore()
	s.Set("shared", 1)

	var a, b any
	s.Subscribe("shared", func(newV, oldV any) { a = newV })
	s.Subscribe("shared", func(newV, oldV any) { b = newV })

	s.Set("shared", 2)
	assert.Equal(t, a, b)
	assert.Equal(t, 2, s.Get("shared"))
}
