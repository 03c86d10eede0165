package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMapLimiter_BurstThenDeny(t *testing.T) {
	l := New(1, 2, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, l.Allow("10.0.0.1", now))
	require.True(t, l.Allow("10.0.0.1", now))
	require.False(t, l.Allow("10.0.0.1", now))
	require.True(t, l.Allow("10.0.0.2", now))
	require.True(t, l.Allow("10.0.0.1", now.Add(time.Second)))
}

func TestMapLimiter_DisabledAndBlankKey(t *testing.T) {
	var l *MapLimiter = New(0, 5, 0)
	require.Nil(t, l)
	require.True(t, l.Allow("x", time.Now()))
	require.Zero(t, l.Len())

	l = New(1, 1, 0)
	require.True(t, l.Allow(" ", time.Now()))
	require.True(t, l.Allow(" ", time.Now()))
}

func TestMapLimiter_EvictsIdle(t *testing.T) {
	l := New(100, 100, time.Second)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 511; i++ {
		l.Allow(fmt.Sprintf("k%d", i), start)
	}
	require.Equal(t, 511, l.Len())
	l.Allow("fresh", start.Add(time.Minute))
	require.Equal(t, 1, l.Len())
}
