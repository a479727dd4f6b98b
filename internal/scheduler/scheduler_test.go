package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestScheduler(cfg Config) *Scheduler {
	return New(nil, nil, nil, cfg, zerolog.Nop())
}

func TestNextFire(t *testing.T) {
	loc := time.UTC
	s := newTestScheduler(Config{Hour: 8, Location: loc})

	t.Run("before the hour fires today", func(t *testing.T) {
		now := time.Date(2026, 1, 15, 6, 30, 0, 0, loc)
		fire := s.nextFire(now)
		assert.Equal(t, time.Date(2026, 1, 15, 8, 0, 0, 0, loc), fire)
	})

	t.Run("after the hour fires tomorrow", func(t *testing.T) {
		now := time.Date(2026, 1, 15, 9, 0, 0, 0, loc)
		fire := s.nextFire(now)
		assert.Equal(t, time.Date(2026, 1, 16, 8, 0, 0, 0, loc), fire)
	})

	t.Run("exactly on the hour fires tomorrow", func(t *testing.T) {
		now := time.Date(2026, 1, 15, 8, 0, 0, 0, loc)
		fire := s.nextFire(now)
		assert.Equal(t, time.Date(2026, 1, 16, 8, 0, 0, 0, loc), fire)
	})
}

func TestIsPlayDay(t *testing.T) {
	s := newTestScheduler(Config{
		Hour:     8,
		PlayDays: []time.Weekday{time.Tuesday, time.Thursday, time.Saturday},
		Location: time.UTC,
	})

	assert.True(t, s.isPlayDay(time.Tuesday))
	assert.True(t, s.isPlayDay(time.Saturday))
	assert.False(t, s.isPlayDay(time.Monday))
	assert.False(t, s.isPlayDay(time.Sunday))
}
