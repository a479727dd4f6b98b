package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceTodayUsesConfiguredLocation(t *testing.T) {
	// Offset far enough from UTC that the local date regularly differs.
	loc := time.FixedZone("UTC+7", 7*60*60)
	svc := NewService(nil, loc)

	today := svc.today()
	assert.Equal(t, loc, today.Location())

	want := time.Now().In(loc)
	assert.Equal(t, want.Year(), today.Year())
	assert.Equal(t, want.YearDay(), today.YearDay())
}

func TestServiceTodayDefaultsToLocal(t *testing.T) {
	svc := NewService(nil, nil)
	assert.Equal(t, time.Local, svc.today().Location())
}
